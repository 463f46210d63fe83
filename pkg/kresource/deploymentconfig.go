package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DeploymentConfig is the OpenShift deployment kind. Like a
// ReplicationController, it selects pods with a plain label map.
type DeploymentConfig struct {
	baseObject
	Spec DeploymentConfigSpec `json:"spec"`
}

type DeploymentConfigSpec struct {
	Replicas *int32            `json:"replicas,omitempty"`
	Selector map[string]string `json:"selector,omitempty"`
	Template PodTemplate       `json:"template"`
}

func (d *DeploymentConfig) PodSpec() corev1.PodSpec {
	return d.Spec.Template.Spec
}

func (d *DeploymentConfig) SetPodSpec(spec corev1.PodSpec) error {
	d.Spec.Template.Spec = spec
	return d.setTreePodSpec(spec, "spec", "template", "spec")
}

func (d *DeploymentConfig) PodLabelSelector() *metav1.LabelSelector {
	return toLabelSelector(d.Spec.Selector)
}

var _ Workload = &DeploymentConfig{}
