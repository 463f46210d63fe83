package fragment

import (
	"testing"

	"github.com/pkg/errors"
)

func TestClassify(t *testing.T) {
	kinds := NewKindMapping()
	for _, tc := range []struct {
		filename string
		expected Info
	}{
		{"myapp-svc.yaml", Info{Name: "myapp", Kind: "Service", Ext: "yaml"}},
		{"myapp-deployment.yml", Info{Name: "myapp", Kind: "Deployment", Ext: "yml"}},
		{"myapp-rc.json", Info{Name: "myapp", Kind: "ReplicationController", Ext: "json"}},
		// Type tokens are matched case-insensitively.
		{"myapp-SVC.yaml", Info{Name: "myapp", Kind: "Service", Ext: "yaml"}},
		// So are extensions, but the reported extension is lower-cased.
		{"myapp-svc.YAML", Info{Name: "myapp", Kind: "Service", Ext: "yaml"}},
		// A bare type token is consumed as the kind, leaving no name.
		{"svc.yaml", Info{Kind: "Service", Ext: "yaml"}},
		{"rc.yml", Info{Kind: "ReplicationController", Ext: "yml"}},
		{"deploymentconfig.yml", Info{Kind: "DeploymentConfig", Ext: "yml"}},
		// A name that is not a type token stays a name.
		{"myapp.yaml", Info{Name: "myapp", Ext: "yaml"}},
	} {
		info, err := Classify(kinds, tc.filename)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.filename, err)
			continue
		}
		if info != tc.expected {
			t.Errorf("%s: expected %+v, got %+v", tc.filename, tc.expected, info)
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	kinds := NewKindMapping()
	for _, tc := range []struct {
		filename string
		expected error
	}{
		{"myapp-bogus.yaml", ErrInvalidFragmentName},
		{"my-app.yaml", ErrInvalidFragmentName},
		{"myapp.txt", ErrMalformedFilename},
		{"myapp", ErrMalformedFilename},
	} {
		_, err := Classify(kinds, tc.filename)
		if errors.Cause(err) != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.filename, tc.expected, err)
		}
	}
}

func TestIsFragmentFile(t *testing.T) {
	for filename, expected := range map[string]bool{
		"myapp-svc.yaml": true,
		"svc.yml":        true,
		"myapp.json":     true,
		"profiles.yaml":  false,
		"profile.yml":    false,
		"README.md":      false,
		"notes.txt":      false,
	} {
		if IsFragmentFile(filename) != expected {
			t.Errorf("IsFragmentFile(%q): expected %v", filename, expected)
		}
	}
}

func TestKindMapping(t *testing.T) {
	kinds := NewKindMapping()
	if kind, ok := kinds.KindForToken("CM"); !ok || kind != "ConfigMap" {
		t.Errorf("expected ConfigMap for token CM, got %q", kind)
	}
	// Several tokens map to Service; the last one listed is canonical.
	if token, ok := kinds.TokenForKind("Service"); !ok || token != "svc" {
		t.Errorf("expected svc for Service, got %q", token)
	}
	if got := kinds.NameWithSuffix("myapp", "Service"); got != "myapp-svc" {
		t.Errorf("expected myapp-svc, got %q", got)
	}
	if got := kinds.NameWithSuffix("myapp", "UnknownKind"); got != "myapp" {
		t.Errorf("expected unsuffixed name for unknown kind, got %q", got)
	}
}

func TestVersioningForKind(t *testing.T) {
	for kind, expected := range map[string]string{
		"Deployment":  "extensions/v1beta1",
		"Ingress":     "extensions/v1beta1",
		"StatefulSet": "apps/v1beta1",
		"Service":     "v1",
		"ConfigMap":   "v1",
	} {
		if got := DefaultVersioning.ForKind(kind); got != expected {
			t.Errorf("%s: expected %q, got %q", kind, expected, got)
		}
	}
}
