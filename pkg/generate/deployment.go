package generate

import (
	jsonyaml "github.com/ghodss/yaml"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/fluxcd/manifestgen/pkg/kresource"
)

type defaultDeployment struct {
	APIVersion string               `json:"apiVersion"`
	Kind       string               `json:"kind"`
	Metadata   kresource.ObjectMeta `json:"metadata"`
	Spec       struct {
		Replicas int32                 `json:"replicas"`
		Selector *metav1.LabelSelector `json:"selector,omitempty"`
		Template struct {
			Metadata kresource.ObjectMeta `json:"metadata,omitempty"`
			Spec     corev1.PodSpec       `json:"spec"`
		} `json:"template"`
	} `json:"spec"`
}

// DefaultDeployment synthesizes a Deployment manifest around the
// computed pod spec, for runs whose fragments supply no controller of
// their own. The deployment selects its pods by the app label.
func DefaultDeployment(appName, apiVersion string, podSpec corev1.PodSpec) ([]byte, error) {
	labels := map[string]string{"app": appName}
	d := defaultDeployment{
		APIVersion: apiVersion,
		Kind:       "Deployment",
		Metadata:   kresource.ObjectMeta{Name: appName, Labels: labels},
	}
	d.Spec.Replicas = 1
	d.Spec.Selector = &metav1.LabelSelector{MatchLabels: labels}
	d.Spec.Template.Metadata = kresource.ObjectMeta{Labels: labels}
	d.Spec.Template.Spec = podSpec
	content, err := jsonyaml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "encoding default deployment")
	}
	return content, nil
}
