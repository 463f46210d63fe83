package manifests

import (
	"io/ioutil"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/fluxcd/manifestgen/pkg/fragment"
	"github.com/fluxcd/manifestgen/pkg/kresource"
)

// Collection is an ordered set of typed resources assembled from a
// directory of fragments. It tolerates duplicates; ordering is the
// stable (kind, name) total order, for deterministic output.
type Collection struct {
	resources []kresource.KubeResource
}

// LoadCollection reads every fragment file in dir, enriches it, and
// converts it to a typed resource. There is no partial result: a
// failure on any fragment aborts the whole batch.
func LoadCollection(enricher fragment.Enricher, dir, appName string, logger log.Logger) (*Collection, error) {
	begin := time.Now()
	collection, err := loadCollection(enricher, dir, appName, logger)
	loadDuration.With("success", strconv.FormatBool(err == nil)).Observe(time.Since(begin).Seconds())
	return collection, err
}

func loadCollection(enricher fragment.Enricher, dir, appName string, logger log.Logger) (*Collection, error) {
	paths, err := ListFragments(dir)
	if err != nil {
		return nil, err
	}
	collection := &Collection{}
	for _, path := range paths {
		frag, err := enricher.Enrich(path, appName)
		if err != nil {
			fragmentsRead.With("success", "false").Add(1)
			return nil, err
		}
		r, err := convert(path, frag)
		if err != nil {
			fragmentsRead.With("success", "false").Add(1)
			return nil, err
		}
		fragmentsRead.With("success", "true").Add(1)
		logger.Log("fragment", path, "kind", r.GetKind(), "name", r.GetName())
		collection.Add(r)
	}
	return collection, nil
}

// ListFragments gives the fragment files in a directory, sorted by
// name. Files that don't follow the fragment naming convention, and
// profile configuration files, are skipped rather than failed on.
func ListFragments(dir string) ([]string, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %q for fragments", dir)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !fragment.IsFragmentFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ParseResource converts serialized resource bytes (an enriched
// fragment, or a synthesized manifest) into a typed resource.
func ParseResource(source string, content []byte) (kresource.KubeResource, error) {
	var tree yaml.MapSlice
	if err := yaml.Unmarshal(content, &tree); err != nil {
		return nil, errors.Wrapf(err, "parsing %q", source)
	}
	return kresource.Unmarshal(source, content, tree)
}

func convert(source string, frag *fragment.Fragment) (kresource.KubeResource, error) {
	content, err := frag.Bytes()
	if err != nil {
		return nil, errors.Wrapf(err, "encoding fragment %q", source)
	}
	return kresource.Unmarshal(source, content, frag.Tree())
}

// Add inserts a resource, keeping the collection sorted.
func (c *Collection) Add(r kresource.KubeResource) {
	c.resources = append(c.resources, r)
	sort.SliceStable(c.resources, func(i, j int) bool {
		return c.resources[i].ResourceID().Less(c.resources[j].ResourceID())
	})
}

// Resources returns the collection in (kind, name) order.
func (c *Collection) Resources() []kresource.KubeResource {
	return c.resources
}

// Len gives the number of resources held.
func (c *Collection) Len() int {
	return len(c.resources)
}

// Find returns the resource of the given kind and name, or nil.
func (c *Collection) Find(kind, name string) kresource.KubeResource {
	for _, r := range c.resources {
		if r.GetKind() == kind && r.GetName() == name {
			return r
		}
	}
	return nil
}

// HasKind reports whether the collection holds any resource of the
// given kinds. Higher-level policy uses this to decide whether default
// resources need synthesizing.
func (c *Collection) HasKind(kinds ...string) bool {
	for _, r := range c.resources {
		for _, kind := range kinds {
			if r.GetKind() == kind {
				return true
			}
		}
	}
	return false
}

// Workloads returns the resources that carry a pod template, in
// collection order.
func (c *Collection) Workloads() []kresource.Workload {
	var workloads []kresource.Workload
	for _, r := range c.resources {
		if w, ok := r.(kresource.Workload); ok {
			workloads = append(workloads, w)
		}
	}
	return workloads
}

// PodLabelSelector gives the single pod label selector declared across
// the collection's controllers; conflicting selectors are an error.
func (c *Collection) PodLabelSelector() (*metav1.LabelSelector, error) {
	return kresource.PodLabelSelector(c.resources)
}
