package kresource

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type CronJob struct {
	baseObject
	Spec CronJobSpec `json:"spec"`
}

type CronJobSpec struct {
	Schedule    string `json:"schedule,omitempty"`
	JobTemplate struct {
		Spec JobSpec `json:"spec"`
	} `json:"jobTemplate"`
}

func (c *CronJob) PodSpec() corev1.PodSpec {
	return c.Spec.JobTemplate.Spec.Template.Spec
}

func (c *CronJob) SetPodSpec(spec corev1.PodSpec) error {
	c.Spec.JobTemplate.Spec.Template.Spec = spec
	return c.setTreePodSpec(spec, "spec", "jobTemplate", "spec", "template", "spec")
}

// CronJobs manage their pods through the jobs they spawn, so they
// don't take part in pod label selector extraction.
func (c *CronJob) PodLabelSelector() *metav1.LabelSelector {
	return nil
}

var _ Workload = &CronJob{}
