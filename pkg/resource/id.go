package resource

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidResourceID = errors.New("invalid resource ID")

	// Kind names are CamelCase identifiers; resource names follow the
	// (non-normative) Kubernetes identifier conventions, which in
	// practice include dots and dashes as well as alphanumerics.
	IDRegexp = regexp.MustCompile("^([a-zA-Z]+)/([a-zA-Z0-9_.:-]+)$")
)

// ID identifies a resource within a generated manifest set, by its
// kind and name. Manifests are generated for a single application (and
// hence a single namespace), so no namespace component is needed.
type ID struct {
	kind, name string
}

// MakeID constructs an ID from its constituent components.
func MakeID(kind, name string) ID {
	return ID{kind: kind, name: name}
}

// ParseID constructs an ID from a `<kind>/<name>` string
// representation if possible, returning an error value otherwise.
func ParseID(s string) (ID, error) {
	if m := IDRegexp.FindStringSubmatch(s); m != nil {
		return ID{kind: m[1], name: m[2]}, nil
	}
	return ID{}, errors.Wrap(ErrInvalidResourceID, "parsing "+s)
}

// MustParseID constructs an ID from a string representation, panicking
// if the format is invalid.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return fmt.Sprintf("%s/%s", id.kind, id.name)
}

// Components returns the constituent components of an ID.
func (id ID) Components() (kind, name string) {
	return id.kind, id.name
}

// Less gives a stable total order over IDs: by kind, then by name.
// It is used to sort collections for deterministic output.
func (id ID) Less(other ID) bool {
	if id.kind != other.kind {
		return id.kind < other.kind
	}
	return id.name < other.name
}

// MarshalText encodes an ID as a flat string; this is required because
// IDs are sometimes used as map keys.
func (id ID) MarshalText() (text []byte, err error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes an ID from a flat string.
func (id *ID) UnmarshalText(text []byte) error {
	result, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = result
	return nil
}

type IDs []ID

func (p IDs) Len() int           { return len(p) }
func (p IDs) Less(i, j int) bool { return p[i].Less(p[j]) }
func (p IDs) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p IDs) Sort()              { sort.Sort(p) }

func (p IDs) String() string {
	var ids []string
	for _, id := range p {
		ids = append(ids, id.String())
	}
	return "{" + strings.Join(ids, ", ") + "}"
}
