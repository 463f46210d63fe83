package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type Deployment struct {
	baseObject
	Spec DeploymentSpec `json:"spec"`
}

type DeploymentSpec struct {
	Replicas *int32                `json:"replicas,omitempty"`
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
	Template PodTemplate           `json:"template"`
}

func (d *Deployment) PodSpec() corev1.PodSpec {
	return d.Spec.Template.Spec
}

func (d *Deployment) SetPodSpec(spec corev1.PodSpec) error {
	d.Spec.Template.Spec = spec
	return d.setTreePodSpec(spec, "spec", "template", "spec")
}

func (d *Deployment) PodLabelSelector() *metav1.LabelSelector {
	return d.Spec.Selector
}

var _ Workload = &Deployment{}
