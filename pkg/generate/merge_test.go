package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
)

func TestMergePodSpecEmptyDefaults(t *testing.T) {
	target := corev1.PodSpec{
		Containers: []corev1.Container{{Image: "quay.io/acme/app:1.0"}},
	}
	MergePodSpec(&target, corev1.PodSpec{}, "acme-app")
	assert.Equal(t, "acme-app", target.Containers[0].Name)
	assert.Equal(t, "quay.io/acme/app:1.0", target.Containers[0].Image)
}

func TestMergePodSpecEmptyDefaultsKeepsName(t *testing.T) {
	target := corev1.PodSpec{
		Containers: []corev1.Container{{Name: "mine", Image: "app:1.0"}},
	}
	MergePodSpec(&target, corev1.PodSpec{}, "acme-app")
	assert.Equal(t, "mine", target.Containers[0].Name)
}

func TestMergePodSpecEmptyTarget(t *testing.T) {
	defaults := corev1.PodSpec{
		Containers: []corev1.Container{
			{Name: "acme-app", Image: "app:1.0"},
			{Name: "sidecar", Image: "sidecar:2.0"},
		},
	}
	var target corev1.PodSpec
	MergePodSpec(&target, defaults, "ignored")
	assert.Equal(t, defaults.Containers, target.Containers)
}

func TestMergePodSpecFillsAbsentFields(t *testing.T) {
	target := corev1.PodSpec{
		Containers: []corev1.Container{{
			Image:      "mine:3.0",
			WorkingDir: "/work",
		}},
	}
	defaults := corev1.PodSpec{
		Containers: []corev1.Container{{
			Name:            "acme-app",
			Image:           "app:1.0",
			WorkingDir:      "/deployments",
			ImagePullPolicy: corev1.PullAlways,
			TTY:             true,
		}},
	}
	MergePodSpec(&target, defaults, "ignored")

	c := target.Containers[0]
	assert.Equal(t, "acme-app", c.Name)
	// Present fields are never overwritten.
	assert.Equal(t, "mine:3.0", c.Image)
	assert.Equal(t, "/work", c.WorkingDir)
	// Absent fields are filled in.
	assert.Equal(t, corev1.PullAlways, c.ImagePullPolicy)
	assert.True(t, c.TTY)
}

func TestMergePodSpecEnvAndPorts(t *testing.T) {
	target := corev1.PodSpec{
		Containers: []corev1.Container{{
			Name: "app",
			Env:  []corev1.EnvVar{{Name: "MODE", Value: "user"}},
			Ports: []corev1.ContainerPort{
				{Name: "http", ContainerPort: 8080},
			},
		}},
	}
	defaults := corev1.PodSpec{
		Containers: []corev1.Container{{
			Env: []corev1.EnvVar{
				{Name: "MODE", Value: "default"},
				{Name: "EXTRA", Value: "yes"},
			},
			Ports: []corev1.ContainerPort{
				{Name: "http", ContainerPort: 9999},
				{ContainerPort: 8080},
				{Name: "metrics", ContainerPort: 8778},
			},
		}},
	}
	MergePodSpec(&target, defaults, "ignored")

	c := target.Containers[0]
	// The user's MODE wins; EXTRA is appended.
	assert.Equal(t, []corev1.EnvVar{
		{Name: "MODE", Value: "user"},
		{Name: "EXTRA", Value: "yes"},
	}, c.Env)
	// Ports clash by name or by number; only metrics is new.
	assert.Equal(t, []corev1.ContainerPort{
		{Name: "http", ContainerPort: 8080},
		{Name: "metrics", ContainerPort: 8778},
	}, c.Ports)
}

func TestMergePodSpecAppendsExtraContainers(t *testing.T) {
	target := corev1.PodSpec{
		Containers: []corev1.Container{
			{Name: "one"},
			{Name: "two"},
		},
	}
	defaults := corev1.PodSpec{
		Containers: []corev1.Container{
			{Image: "one:1"},
			{Image: "two:1"},
			{Name: "three", Image: "three:1"},
		},
	}
	MergePodSpec(&target, defaults, "ignored")

	assert.Len(t, target.Containers, 3)
	assert.Equal(t, "one:1", target.Containers[0].Image)
	assert.Equal(t, "two:1", target.Containers[1].Image)
	assert.Equal(t, "three", target.Containers[2].Name)
}

func TestMergePodSpecProbesAdoptedIfAbsent(t *testing.T) {
	userProbe := &corev1.Probe{InitialDelaySeconds: 5}
	defaultProbe := &corev1.Probe{InitialDelaySeconds: 180}
	target := corev1.PodSpec{
		Containers: []corev1.Container{{Name: "app", LivenessProbe: userProbe}},
	}
	defaults := corev1.PodSpec{
		Containers: []corev1.Container{{
			LivenessProbe:  defaultProbe,
			ReadinessProbe: defaultProbe,
		}},
	}
	MergePodSpec(&target, defaults, "ignored")

	c := target.Containers[0]
	assert.Equal(t, userProbe, c.LivenessProbe)
	assert.Equal(t, defaultProbe, c.ReadinessProbe)
}
