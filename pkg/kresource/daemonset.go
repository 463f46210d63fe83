package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type DaemonSet struct {
	baseObject
	Spec DaemonSetSpec `json:"spec"`
}

type DaemonSetSpec struct {
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
	Template PodTemplate           `json:"template"`
}

func (d *DaemonSet) PodSpec() corev1.PodSpec {
	return d.Spec.Template.Spec
}

func (d *DaemonSet) SetPodSpec(spec corev1.PodSpec) error {
	d.Spec.Template.Spec = spec
	return d.setTreePodSpec(spec, "spec", "template", "spec")
}

func (d *DaemonSet) PodLabelSelector() *metav1.LabelSelector {
	return d.Spec.Selector
}

var _ Workload = &DaemonSet{}
