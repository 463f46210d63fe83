package manifests

import (
	"bytes"
	"encoding/json"
	"io/ioutil"

	jsonyaml "github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/fluxcd/manifestgen/pkg/kresource"
)

// Format selects the text representation a resource is rendered to.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Extension gives the canonical file extension for the format.
func (f Format) Extension() string {
	return string(f)
}

// Serialize renders a resource to indented text. Empty sequences and
// null-valued (or empty) mapping entries are not meaningfully present,
// and are suppressed. Key order follows the resource's tree, so
// serializing the same resource twice is byte-identical.
func Serialize(r kresource.KubeResource, format Format) ([]byte, error) {
	tree, ok := prune(r.Tree()).(yaml.MapSlice)
	if !ok {
		tree = yaml.MapSlice{}
	}
	switch format {
	case FormatJSON:
		content, err := yaml.Marshal(tree)
		if err != nil {
			return nil, errors.Wrapf(err, "serializing %s", r.ResourceID())
		}
		jsonContent, err := jsonyaml.YAMLToJSON(content)
		if err != nil {
			return nil, errors.Wrapf(err, "serializing %s", r.ResourceID())
		}
		var indented bytes.Buffer
		if err := json.Indent(&indented, jsonContent, "", "  "); err != nil {
			return nil, errors.Wrapf(err, "serializing %s", r.ResourceID())
		}
		indented.WriteByte('\n')
		return indented.Bytes(), nil
	default:
		content, err := yaml.Marshal(tree)
		if err != nil {
			return nil, errors.Wrapf(err, "serializing %s", r.ResourceID())
		}
		return content, nil
	}
}

// Write serializes a resource to the target path plus the format's
// extension, returning the path written.
func Write(r kresource.KubeResource, target string, format Format) (string, error) {
	content, err := Serialize(r, format)
	if err != nil {
		return "", err
	}
	path := target + "." + format.Extension()
	if err := ioutil.WriteFile(path, content, 0644); err != nil {
		return "", errors.Wrapf(err, "writing %s", r.ResourceID())
	}
	return path, nil
}

// prune removes the entries of a tree that serialization must not
// emit: nil values, empty mappings, and empty sequences. Scalars
// (including empty strings) are kept as given. Nulls inside sequences
// are left alone; only mapping entries are suppressed.
func prune(node interface{}) interface{} {
	switch v := node.(type) {
	case yaml.MapSlice:
		result := yaml.MapSlice{}
		for _, item := range v {
			value := prune(item.Value)
			if isAbsent(value) {
				continue
			}
			result = append(result, yaml.MapItem{Key: item.Key, Value: value})
		}
		return result
	case []interface{}:
		result := make([]interface{}, 0, len(v))
		for _, e := range v {
			result = append(result, prune(e))
		}
		return result
	default:
		return node
	}
}

func isAbsent(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case yaml.MapSlice:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	case map[interface{}]interface{}:
		return len(v) == 0
	default:
		return false
	}
}
