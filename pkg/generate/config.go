package generate

import (
	"io/ioutil"
	"strings"

	jsonyaml "github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// Project is the build-time context a manifest generation run works
// in: the coordinates of the application being packaged, its build
// properties, and the dependencies on its classpath (used for
// health-check auto-discovery).
type Project struct {
	GroupID      string            `json:"groupId"`
	ArtifactID   string            `json:"artifactId"`
	Version      string            `json:"version,omitempty"`
	Properties   map[string]string `json:"properties,omitempty"`
	Dependencies []string          `json:"dependencies,omitempty"`
}

// snapshotSuffix marks in-development versions; images built from them
// default to an always-pull policy so that rebuilt snapshots are
// picked up.
const snapshotSuffix = "SNAPSHOT"

func (p Project) IsSnapshot() bool {
	return strings.HasSuffix(p.Version, snapshotSuffix)
}

// HasDependency reports whether the given class or artifact coordinate
// is on the project's classpath.
func (p Project) HasDependency(name string) bool {
	for _, d := range p.Dependencies {
		if d == name {
			return true
		}
	}
	return false
}

// Property returns a project property, or the empty string.
func (p Project) Property(key string) string {
	return p.Properties[key]
}

// ImageConfig describes one container image the build deals with.
// Only images with a build section produce containers in the
// generated pod spec; a bare name is a pull-only reference. Marking an
// image buildable without giving it a build section is a contract
// violation.
type ImageConfig struct {
	Name      string       `json:"name"`
	Alias     string       `json:"alias,omitempty"`
	Buildable bool         `json:"buildable,omitempty"`
	Build     *BuildConfig `json:"build,omitempty"`
}

// BuildConfig is the subset of an image's build specification the
// generator reads.
type BuildConfig struct {
	From  string   `json:"from,omitempty"`
	Ports []string `json:"ports,omitempty"`
}

// ResourceConfig is the user's resource-level configuration: the
// pieces of the computed pod spec that aren't derivable from the
// images themselves.
type ResourceConfig struct {
	Env                 map[string]string `json:"env,omitempty"`
	Volumes             []VolumeConfig    `json:"volumes,omitempty"`
	Liveness            *ProbeConfig      `json:"liveness,omitempty"`
	Readiness           *ProbeConfig      `json:"readiness,omitempty"`
	ImagePullPolicy     string            `json:"imagePullPolicy,omitempty"`
	ContainerPrivileged bool              `json:"containerPrivileged,omitempty"`
}

// VolumeConfig names a volume and the paths it is mounted at.
type VolumeConfig struct {
	Name   string   `json:"name"`
	Mounts []string `json:"mounts,omitempty"`
}

// Config is the top-level configuration file format.
type Config struct {
	Project  Project        `json:"project"`
	Images   []ImageConfig  `json:"images,omitempty"`
	Resource ResourceConfig `json:"resource,omitempty"`
}

// LoadConfig reads a YAML (or JSON) configuration file.
func LoadConfig(path string) (Config, error) {
	var config Config
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config %q", path)
	}
	if err := jsonyaml.Unmarshal(content, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %q", path)
	}
	return config, nil
}
