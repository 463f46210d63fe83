package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Types that daemonsets, deployments, and other controller kinds have
// in common. The pod spec itself is the Kubernetes API type, so the
// merge engine and the container assembler share one schema.

type PodTemplate struct {
	Metadata ObjectMeta     `json:"metadata,omitempty"`
	Spec     corev1.PodSpec `json:"spec,omitempty"`
}

// toLabelSelector lifts a plain match-labels map (as used by
// ReplicationController and DeploymentConfig) into a LabelSelector;
// an empty map gives nil, i.e., no selector.
func toLabelSelector(matchLabels map[string]string) *metav1.LabelSelector {
	if len(matchLabels) == 0 {
		return nil
	}
	return &metav1.LabelSelector{MatchLabels: matchLabels}
}
