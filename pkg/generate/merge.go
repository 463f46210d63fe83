package generate

import (
	corev1 "k8s.io/api/core/v1"
)

// The merge policy is strictly additive: the user-authored target is
// never weakened, only filled in from the computed defaults.

// MergePodSpec merges a computed default pod spec into a user-authored
// one, in place.
//
// With no default containers, the only effect is to give the first
// target container a name if it has none. With default containers and
// an empty target, the defaults are adopted verbatim. Otherwise the
// container lists are aligned positionally: target container i merges
// with default container i, and default containers beyond the target
// list's length are appended.
func MergePodSpec(target *corev1.PodSpec, defaults corev1.PodSpec, defaultName string) {
	if len(defaults.Containers) == 0 {
		if len(target.Containers) > 0 && target.Containers[0].Name == "" {
			target.Containers[0].Name = defaultName
		}
		return
	}
	if len(target.Containers) == 0 {
		target.Containers = append(target.Containers, defaults.Containers...)
		return
	}
	for i, defaultContainer := range defaults.Containers {
		if i >= len(target.Containers) {
			target.Containers = append(target.Containers, defaultContainer)
			continue
		}
		mergeContainer(&target.Containers[i], defaultContainer)
	}
}

// mergeContainer fills the absent fields of a container from a
// default. The simple scalar fields below are the statically
// enumerated merge table; collections and nested structures get
// bespoke treatment because a wholesale overwrite would discard user
// intent. A zero value counts as absent, including for the boolean
// fields, so a default can only ever switch them on.
func mergeContainer(target *corev1.Container, defaults corev1.Container) {
	if target.Name == "" {
		target.Name = defaults.Name
	}
	if target.Image == "" {
		target.Image = defaults.Image
	}
	if target.WorkingDir == "" {
		target.WorkingDir = defaults.WorkingDir
	}
	if target.ImagePullPolicy == "" {
		target.ImagePullPolicy = defaults.ImagePullPolicy
	}
	if target.TerminationMessagePath == "" {
		target.TerminationMessagePath = defaults.TerminationMessagePath
	}
	if target.TerminationMessagePolicy == "" {
		target.TerminationMessagePolicy = defaults.TerminationMessagePolicy
	}
	if !target.Stdin {
		target.Stdin = defaults.Stdin
	}
	if !target.StdinOnce {
		target.StdinOnce = defaults.StdinOnce
	}
	if !target.TTY {
		target.TTY = defaults.TTY
	}

	for _, env := range defaults.Env {
		ensureHasEnv(target, env)
	}
	for _, port := range defaults.Ports {
		ensureHasPort(target, port)
	}
	if target.ReadinessProbe == nil {
		target.ReadinessProbe = defaults.ReadinessProbe
	}
	if target.LivenessProbe == nil {
		target.LivenessProbe = defaults.LivenessProbe
	}
	if target.SecurityContext == nil {
		target.SecurityContext = defaults.SecurityContext
	}
}

// ensureHasEnv appends an env var unless one with the same name is
// already present; values are never overwritten.
func ensureHasEnv(container *corev1.Container, envVar corev1.EnvVar) {
	for _, v := range container.Env {
		if v.Name == envVar.Name {
			return
		}
	}
	container.Env = append(container.Env, envVar)
}

// ensureHasPort appends a port unless the container already carries
// one with the same name or the same port number.
func ensureHasPort(container *corev1.Container, port corev1.ContainerPort) {
	for _, p := range container.Ports {
		if p.Name != "" && port.Name != "" && p.Name == port.Name {
			return
		}
		if p.ContainerPort != 0 && p.ContainerPort == port.ContainerPort {
			return
		}
	}
	container.Ports = append(container.Ports, port)
}
