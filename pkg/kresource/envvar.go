package kresource

import (
	corev1 "k8s.io/api/core/v1"
)

// Helpers for the env var and port lists that containers carry. These
// are shared between the container assembler and the merge engine;
// both treat the lists as sets keyed by name (env) or number (ports).

// SetEnvVar sets an environment variable in the list, overriding any
// existing value. It reports whether the list changed.
func SetEnvVar(env *[]corev1.EnvVar, name, value string) bool {
	for i, v := range *env {
		if v.Name == name {
			if v.Value == value {
				return false
			}
			(*env)[i].Value = value
			return true
		}
	}
	*env = append(*env, corev1.EnvVar{Name: name, Value: value})
	return true
}

// SetEnvVarNoOverride adds an environment variable only if its name is
// not taken. If the name is present with a different value, the
// clashing variable is returned so the caller can report it; nil means
// the list now holds the requested value.
func SetEnvVarNoOverride(env *[]corev1.EnvVar, name, value string) *corev1.EnvVar {
	for i, v := range *env {
		if v.Name == name {
			if v.Value == value {
				return nil // identical values
			}
			return &(*env)[i]
		}
	}
	*env = append(*env, corev1.EnvVar{Name: name, Value: value})
	return nil
}

// GetEnvVar returns the value of the named environment variable, or
// the default when absent or blank.
func GetEnvVar(env []corev1.EnvVar, name, defaultValue string) string {
	for _, v := range env {
		if v.Name == name && v.Value != "" {
			return v.Value
		}
	}
	return defaultValue
}

// AddPort appends a named container port unless the list already
// carries that port number. It reports whether the port was added.
func AddPort(ports *[]corev1.ContainerPort, name string, port int32) bool {
	for _, p := range *ports {
		if p.ContainerPort == port {
			return false
		}
	}
	*ports = append(*ports, corev1.ContainerPort{Name: name, ContainerPort: port})
	return true
}
