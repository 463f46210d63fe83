package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type StatefulSet struct {
	baseObject
	Spec StatefulSetSpec `json:"spec"`
}

type StatefulSetSpec struct {
	Replicas *int32                `json:"replicas,omitempty"`
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
	Template PodTemplate           `json:"template"`
}

func (s *StatefulSet) PodSpec() corev1.PodSpec {
	return s.Spec.Template.Spec
}

func (s *StatefulSet) SetPodSpec(spec corev1.PodSpec) error {
	s.Spec.Template.Spec = spec
	return s.setTreePodSpec(spec, "spec", "template", "spec")
}

func (s *StatefulSet) PodLabelSelector() *metav1.LabelSelector {
	return s.Spec.Selector
}

var _ Workload = &StatefulSet{}
