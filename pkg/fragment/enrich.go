package fragment

import (
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	ErrMissingKind     = errors.New("no resource kind given as part of the file name (e.g. 'app-rc.yml') and no 'kind' defined in the resource descriptor")
	ErrInvalidMetadata = errors.New("metadata is expected to be a mapping")
)

// Enricher fills in the pieces of a fragment that the file name and
// the run's configuration imply, without overriding anything the user
// wrote. Its fields are immutable values, so a single Enricher may be
// shared across files (and goroutines, should a caller parallelize).
type Enricher struct {
	Versions Versioning
	Kinds    *KindMapping
}

// Enrich reads a fragment file and adds the meta information derivable
// from its name, so that the result always carries `kind`,
// `apiVersion` and `metadata.name`:
//
//   - kind comes from the fragment itself if declared there, otherwise
//     from the file name's type token; having neither is an error.
//   - apiVersion is chosen by the versioning policy for the kind.
//   - metadata.name comes from the file name when it has a name part,
//     otherwise from appName.
//
// The routine is a pure function of its inputs plus the kind mapping;
// it does not write anything back to disk.
func (e Enricher) Enrich(path, appName string) (*Fragment, error) {
	info, err := Classify(e.Kinds, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading fragment %q", path)
	}
	frag, err := Parse(content, path)
	if err != nil {
		return nil, err
	}
	if err := e.enrich(frag, info, path, appName); err != nil {
		return nil, err
	}
	return frag, nil
}

// EnrichFragment applies the same enrichment to an already-parsed
// fragment, classified as info. Enriching a fully populated fragment
// leaves it unchanged.
func (e Enricher) EnrichFragment(frag *Fragment, info Info, source, appName string) error {
	return e.enrich(frag, info, source, appName)
}

func (e Enricher) enrich(frag *Fragment, info Info, source, appName string) error {
	// A kind declared in the fragment always wins; the file name's
	// kind only fills a gap.
	if !frag.Has("kind") {
		if info.Kind == "" {
			return errors.Wrapf(ErrMissingKind, "enriching %q", source)
		}
		frag.Set("kind", info.Kind)
	}

	kind, _ := frag.StringAt("kind")
	frag.SetIfAbsent("apiVersion", e.Versions.ForKind(kind))

	meta, err := metadataOf(frag)
	if err != nil {
		return errors.Wrapf(err, "enriching %q", source)
	}
	// No name in the file name means the application name is taken as
	// the resource name.
	name := info.Name
	if name == "" {
		name = appName
	}
	meta = mapItemSetIfAbsent(meta, "name", name)
	frag.Set("metadata", meta)
	return nil
}

// metadataOf returns the fragment's metadata mapping, creating an
// empty one if absent. A present non-mapping value is a configuration
// error, never overwritten.
func metadataOf(frag *Fragment) (yaml.MapSlice, error) {
	v, ok := frag.Get("metadata")
	if !ok || v == nil {
		return yaml.MapSlice{}, nil
	}
	meta, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidMetadata, "got %T", v)
	}
	return meta, nil
}
