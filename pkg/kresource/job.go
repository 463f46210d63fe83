package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type Job struct {
	baseObject
	Spec JobSpec `json:"spec"`
}

type JobSpec struct {
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
	Template PodTemplate           `json:"template"`
}

func (j *Job) PodSpec() corev1.PodSpec {
	return j.Spec.Template.Spec
}

func (j *Job) SetPodSpec(spec corev1.PodSpec) error {
	j.Spec.Template.Spec = spec
	return j.setTreePodSpec(spec, "spec", "template", "spec")
}

func (j *Job) PodLabelSelector() *metav1.LabelSelector {
	return j.Spec.Selector
}

var _ Workload = &Job{}
