package kresource

import (
	"testing"

	corev1 "k8s.io/api/core/v1"
)

func TestSetEnvVar(t *testing.T) {
	var env []corev1.EnvVar
	if !SetEnvVar(&env, "MODE", "prod") {
		t.Error("expected a change when adding")
	}
	if SetEnvVar(&env, "MODE", "prod") {
		t.Error("expected no change when setting the same value")
	}
	if !SetEnvVar(&env, "MODE", "dev") {
		t.Error("expected a change when overriding")
	}
	if len(env) != 1 || env[0].Value != "dev" {
		t.Errorf("unexpected env: %+v", env)
	}
}

func TestSetEnvVarNoOverride(t *testing.T) {
	env := []corev1.EnvVar{{Name: "MODE", Value: "prod"}}
	if clash := SetEnvVarNoOverride(&env, "MODE", "prod"); clash != nil {
		t.Errorf("identical value should not clash, got %+v", clash)
	}
	clash := SetEnvVarNoOverride(&env, "MODE", "dev")
	if clash == nil || clash.Value != "prod" {
		t.Errorf("expected the existing variable back, got %+v", clash)
	}
	if clash := SetEnvVarNoOverride(&env, "EXTRA", "1"); clash != nil {
		t.Errorf("new name should not clash, got %+v", clash)
	}
	if len(env) != 2 {
		t.Errorf("unexpected env: %+v", env)
	}
}

func TestGetEnvVar(t *testing.T) {
	env := []corev1.EnvVar{{Name: "MODE", Value: "prod"}, {Name: "EMPTY"}}
	if got := GetEnvVar(env, "MODE", "fallback"); got != "prod" {
		t.Errorf("got %q", got)
	}
	if got := GetEnvVar(env, "EMPTY", "fallback"); got != "fallback" {
		t.Errorf("blank value should fall back, got %q", got)
	}
	if got := GetEnvVar(env, "ABSENT", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
}

func TestAddPort(t *testing.T) {
	var ports []corev1.ContainerPort
	if !AddPort(&ports, "http", 8080) {
		t.Error("expected the port to be added")
	}
	if AddPort(&ports, "other", 8080) {
		t.Error("expected the duplicate number to be refused")
	}
	if !AddPort(&ports, "metrics", 8778) {
		t.Error("expected a second port to be added")
	}
	if len(ports) != 2 {
		t.Errorf("unexpected ports: %+v", ports)
	}
}
