package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type ReplicationController struct {
	baseObject
	Spec ReplicationControllerSpec `json:"spec"`
}

// ReplicationControllers select pods with a plain label map rather
// than a LabelSelector.
type ReplicationControllerSpec struct {
	Replicas *int32            `json:"replicas,omitempty"`
	Selector map[string]string `json:"selector,omitempty"`
	Template PodTemplate       `json:"template"`
}

func (r *ReplicationController) PodSpec() corev1.PodSpec {
	return r.Spec.Template.Spec
}

func (r *ReplicationController) SetPodSpec(spec corev1.PodSpec) error {
	r.Spec.Template.Spec = spec
	return r.setTreePodSpec(spec, "spec", "template", "spec")
}

func (r *ReplicationController) PodLabelSelector() *metav1.LabelSelector {
	return toLabelSelector(r.Spec.Selector)
}

var _ Workload = &ReplicationController{}
