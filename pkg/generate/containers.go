package generate

import (
	"sort"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"

	"github.com/fluxcd/manifestgen/pkg/image"
)

var ErrMissingBuildConfig = errors.New("image is marked buildable but has no build configuration")

// Assembler computes the default container specs for a project's
// buildable images. It holds no mutable state, so one value can serve
// a whole run.
type Assembler struct {
	Project Project
}

// Containers builds one container spec per image configuration that
// carries a build section. Pull-only image references contribute no
// container. Probes come from the resource configuration when given;
// otherwise the last buildable image (assumed to be the main
// application container) gets health-check auto-discovery.
func (a Assembler) Containers(config ResourceConfig, images []ImageConfig) ([]corev1.Container, error) {
	last := -1
	for i, img := range images {
		if img.Buildable || img.Build != nil {
			last = i
		}
	}

	var containers []corev1.Container
	for i, img := range images {
		if img.Build == nil {
			if img.Buildable {
				return nil, errors.Wrapf(ErrMissingBuildConfig, "image %q", img.Name)
			}
			continue
		}

		liveness, err := config.Liveness.Probe()
		if err != nil {
			return nil, errors.Wrapf(err, "liveness probe for image %q", img.Name)
		}
		readiness, err := config.Readiness.Probe()
		if err != nil {
			return nil, errors.Wrapf(err, "readiness probe for image %q", img.Name)
		}
		if i == last {
			if liveness == nil {
				liveness = discoverLivenessProbe(a.Project)
			}
			if readiness == nil {
				readiness = discoverReadinessProbe(a.Project)
			}
		}

		ports, err := ContainerPorts(img.Build.Ports, a.Project.Properties)
		if err != nil {
			return nil, errors.Wrapf(err, "ports of image %q", img.Name)
		}

		privileged := config.ContainerPrivileged
		containers = append(containers, corev1.Container{
			Name:            a.ContainerName(img),
			Image:           img.Name,
			ImagePullPolicy: a.imagePullPolicy(config),
			Env:             environment(config.Env),
			SecurityContext: &corev1.SecurityContext{Privileged: &privileged},
			Ports:           ports,
			VolumeMounts:    volumeMounts(config.Volumes),
			LivenessProbe:   liveness,
			ReadinessProbe:  readiness,
		})
	}
	return containers, nil
}

// ContainerName resolves the name a container gets in the pod spec:
// the image's alias when configured, else `<image-user>-<artifactId>`,
// where the image user falls back to the project's group id.
func (a Assembler) ContainerName(img ImageConfig) string {
	if img.Alias != "" {
		return img.Alias
	}
	user := a.Project.GroupID
	if ref, err := image.ParseRef(img.Name); err == nil && ref.User() != "" {
		user = ref.User()
	}
	return user + "-" + a.Project.ArtifactID
}

func (a Assembler) imagePullPolicy(config ResourceConfig) corev1.PullPolicy {
	if config.ImagePullPolicy != "" {
		return corev1.PullPolicy(config.ImagePullPolicy)
	}
	if a.Project.IsSnapshot() {
		return corev1.PullAlways
	}
	return ""
}

// environment renders the configured env map as a sorted list, for
// deterministic output.
func environment(env map[string]string) []corev1.EnvVar {
	if len(env) == 0 {
		return nil
	}
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)
	vars := make([]corev1.EnvVar, 0, len(names))
	for _, name := range names {
		vars = append(vars, corev1.EnvVar{Name: name, Value: env[name]})
	}
	return vars
}

func volumeMounts(volumes []VolumeConfig) []corev1.VolumeMount {
	var mounts []corev1.VolumeMount
	for _, v := range volumes {
		for _, path := range v.Mounts {
			mounts = append(mounts, corev1.VolumeMount{
				Name:      v.Name,
				MountPath: path,
				ReadOnly:  false,
			})
		}
	}
	return mounts
}
