package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type ReplicaSet struct {
	baseObject
	Spec ReplicaSetSpec `json:"spec"`
}

type ReplicaSetSpec struct {
	Replicas *int32                `json:"replicas,omitempty"`
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
	Template PodTemplate           `json:"template"`
}

func (r *ReplicaSet) PodSpec() corev1.PodSpec {
	return r.Spec.Template.Spec
}

func (r *ReplicaSet) SetPodSpec(spec corev1.PodSpec) error {
	r.Spec.Template.Spec = spec
	return r.setTreePodSpec(spec, "spec", "template", "spec")
}

func (r *ReplicaSet) PodLabelSelector() *metav1.LabelSelector {
	return r.Spec.Selector
}

var _ Workload = &ReplicaSet{}
