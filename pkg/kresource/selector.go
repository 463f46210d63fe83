package kresource

import (
	"reflect"

	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

var ErrMultipleSelectors = errors.New("multiple pod label selectors found")

// PodLabelSelector returns the single pod label selector declared by
// the controllers among the given resources, or nil if none declares
// one. Two controllers declaring different selectors is ambiguous, and
// an error rather than something to resolve silently.
func PodLabelSelector(resources []KubeResource) (*metav1.LabelSelector, error) {
	var chosen *metav1.LabelSelector
	for _, r := range resources {
		w, ok := r.(Workload)
		if !ok {
			continue
		}
		selector := w.PodLabelSelector()
		if selector == nil {
			continue
		}
		if chosen != nil && !reflect.DeepEqual(chosen, selector) {
			return nil, errors.Wrapf(ErrMultipleSelectors, "%v and %v", chosen, selector)
		}
		chosen = selector
	}
	return chosen, nil
}

// RemoveVersionSelector copies a selector label map without its
// `version` key, so that selectors survive version bumps.
func RemoveVersionSelector(selector map[string]string) map[string]string {
	result := make(map[string]string, len(selector))
	for k, v := range selector {
		if k == "version" {
			continue
		}
		result[k] = v
	}
	return result
}
