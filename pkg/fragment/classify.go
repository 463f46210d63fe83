package fragment

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrMalformedFilename   = errors.New("resource file name does not match <name>-<type>.(yaml|yml|json)")
	ErrInvalidFragmentName = errors.New("unknown resource type in file name")

	// A fragment file is named `<name>[-<type>].<ext>`, where the
	// optional type is a token from the kind mapping, and the
	// extension is case-insensitive.
	fragmentNamePattern = regexp.MustCompile(`^(.*?)(?:-([^-]+))?\.((?i:yaml|yml|json))$`)
	// profiles.yaml (or profile.yml, etc.) is build configuration that
	// happens to live alongside fragments, and must not be treated as
	// one.
	profilesPattern = regexp.MustCompile(`^profiles?\.ya?ml$`)
)

// Info is what can be deduced about a resource from its file name
// alone: a candidate name, a candidate kind (either may be empty), and
// the file's extension, lower-cased.
type Info struct {
	Name string
	Kind string
	Ext  string
}

// Classify extracts name, kind and extension from a fragment file
// name. If the name carries a type token (`app-svc.yaml`), the token
// must resolve in the kind mapping. If there is no type token but the
// name itself resolves (`svc.yaml`), the name is consumed as the type:
// the resource takes its name from elsewhere, so Info.Name is left
// empty.
func Classify(kinds *KindMapping, filename string) (Info, error) {
	m := fragmentNamePattern.FindStringSubmatch(filename)
	if m == nil {
		return Info{}, errors.Wrapf(ErrMalformedFilename, "classifying %q", filename)
	}
	info := Info{Name: m[1], Ext: strings.ToLower(m[3])}
	if typ := m[2]; typ != "" {
		kind, ok := kinds.KindForToken(typ)
		if !ok {
			return Info{}, errors.Wrapf(ErrInvalidFragmentName,
				"unknown type %q for file %q; must be one of: %s",
				typ, filename, strings.Join(kinds.Tokens(), ", "))
		}
		info.Kind = kind
	} else if kind, ok := kinds.KindForToken(info.Name); ok {
		// The name is in fact the type, so erase the name.
		info.Kind = kind
		info.Name = ""
	}
	return info, nil
}

// IsFragmentFile reports whether a file name looks like a resource
// fragment: it matches the fragment naming convention and is not a
// profiles configuration file. Directory scans use this to decide
// which files to feed to the enricher.
func IsFragmentFile(filename string) bool {
	return fragmentNamePattern.MatchString(filename) && !profilesPattern.MatchString(filename)
}
