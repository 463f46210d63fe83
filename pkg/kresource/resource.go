package kresource

import (
	jsonyaml "github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/fluxcd/manifestgen/pkg/resource"
	"github.com/fluxcd/manifestgen/pkg/usererr"
)

// KubeResource represents one Kubernetes or OpenShift object, as
// converted from an enriched fragment. Alongside the typed fields
// below, it keeps the full generic tree it was built from, so no
// user-authored content is lost when the object is serialized again.
type KubeResource interface {
	resource.Resource
	Tree() yaml.MapSlice
}

// Workload is implemented by the controller kinds that embed a pod
// template. The supported kinds are a closed set; adding one means
// adding a variant type and wiring it into unmarshalKind.
type Workload interface {
	KubeResource
	PodSpec() corev1.PodSpec
	SetPodSpec(corev1.PodSpec) error
	PodLabelSelector() *metav1.LabelSelector
}

// ObjectMeta is the subset of resource metadata every kind shares.
type ObjectMeta struct {
	Name              string            `json:"name,omitempty"`
	Labels            map[string]string `json:"labels,omitempty"`
	Annotations       map[string]string `json:"annotations,omitempty"`
	CreationTimestamp string            `json:"creationTimestamp,omitempty"`
}

// struct to embed in objects, to provide a default implementation of
// KubeResource
type baseObject struct {
	source string
	bytes  []byte
	tree   yaml.MapSlice

	// these are present for unmarshalling into the struct
	APIVersion string     `json:"apiVersion"`
	Kind       string     `json:"kind"`
	Meta       ObjectMeta `json:"metadata"`
}

func (o baseObject) ResourceID() resource.ID {
	return resource.MakeID(o.Kind, o.Meta.Name)
}

func (o baseObject) Source() string {
	return o.source
}

func (o baseObject) Bytes() []byte {
	return o.bytes
}

func (o baseObject) Tree() yaml.MapSlice {
	return o.tree
}

func (o baseObject) GroupVersion() string {
	return o.APIVersion
}

func (o baseObject) GetKind() string {
	return o.Kind
}

func (o baseObject) GetName() string {
	return o.Meta.Name
}

// setTreePodSpec writes an updated pod spec back into the generic
// tree at the given path, so the typed view and the serialized output
// stay in step.
func (o *baseObject) setTreePodSpec(spec corev1.PodSpec, path ...string) error {
	node, err := encodeNode(spec)
	if err != nil {
		return errors.Wrap(err, "encoding pod spec")
	}
	o.tree = treeSet(o.tree, node, path...)
	return nil
}

// Unmarshal converts the bytes (and ordered tree) of an enriched
// fragment into a typed resource. Kinds with a pod template get their
// own variant; everything else is represented by the base object.
func Unmarshal(source string, content []byte, tree yaml.MapSlice) (KubeResource, error) {
	base := baseObject{source: source, bytes: content, tree: tree}
	// NB ghodss/yaml rather than yaml.v2, so that the json field tags
	// of the Kubernetes API types are honoured.
	if err := jsonyaml.Unmarshal(content, &base); err != nil {
		return nil, makeUnmarshalObjectErr(source, err)
	}
	r, err := unmarshalKind(base, content)
	if err != nil {
		return nil, makeUnmarshalObjectErr(source, err)
	}
	return r, nil
}

func unmarshalKind(base baseObject, content []byte) (KubeResource, error) {
	switch base.Kind {
	case "CronJob":
		var cj = CronJob{baseObject: base}
		if err := jsonyaml.Unmarshal(content, &cj); err != nil {
			return nil, err
		}
		return &cj, nil
	case "DaemonSet":
		var ds = DaemonSet{baseObject: base}
		if err := jsonyaml.Unmarshal(content, &ds); err != nil {
			return nil, err
		}
		return &ds, nil
	case "Deployment":
		var dep = Deployment{baseObject: base}
		if err := jsonyaml.Unmarshal(content, &dep); err != nil {
			return nil, err
		}
		return &dep, nil
	case "DeploymentConfig":
		var dc = DeploymentConfig{baseObject: base}
		if err := jsonyaml.Unmarshal(content, &dc); err != nil {
			return nil, err
		}
		return &dc, nil
	case "Job":
		var j = Job{baseObject: base}
		if err := jsonyaml.Unmarshal(content, &j); err != nil {
			return nil, err
		}
		return &j, nil
	case "ReplicaSet":
		var rs = ReplicaSet{baseObject: base}
		if err := jsonyaml.Unmarshal(content, &rs); err != nil {
			return nil, err
		}
		return &rs, nil
	case "ReplicationController":
		var rc = ReplicationController{baseObject: base}
		if err := jsonyaml.Unmarshal(content, &rc); err != nil {
			return nil, err
		}
		return &rc, nil
	case "StatefulSet":
		var ss = StatefulSet{baseObject: base}
		if err := jsonyaml.Unmarshal(content, &ss); err != nil {
			return nil, err
		}
		return &ss, nil
	default:
		// The remainder are things we have to carry, but not treat
		// specially.
		return &base, nil
	}
}

func makeUnmarshalObjectErr(source string, err error) *usererr.Error {
	return usererr.New(err, `Could not parse "`+source+`".

This likely means it is malformed YAML.
`)
}

// encodeNode turns a typed value into a generic tree node, going via
// the same json-tag-honouring codec used for unmarshalling.
func encodeNode(v interface{}) (interface{}, error) {
	content, err := jsonyaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var node yaml.MapSlice
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, err
	}
	return node, nil
}

// treeSet sets value at a nested path in an ordered mapping, creating
// intermediate mappings as needed, and returns the updated mapping.
func treeSet(m yaml.MapSlice, value interface{}, path ...string) yaml.MapSlice {
	key := path[0]
	if len(path) == 1 {
		return treeSetKey(m, key, value)
	}
	var child yaml.MapSlice
	for _, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			if c, ok := item.Value.(yaml.MapSlice); ok {
				child = c
			}
			break
		}
	}
	return treeSetKey(m, key, treeSet(child, value, path[1:]...))
}

func treeSetKey(m yaml.MapSlice, key string, value interface{}) yaml.MapSlice {
	for i, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, yaml.MapItem{Key: key, Value: value})
}
