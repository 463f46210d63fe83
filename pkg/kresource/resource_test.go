package kresource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
	corev1 "k8s.io/api/core/v1"

	"github.com/fluxcd/manifestgen/pkg/usererr"
)

func mustUnmarshal(t *testing.T, source, content string) KubeResource {
	t.Helper()
	var tree yaml.MapSlice
	if err := yaml.Unmarshal([]byte(content), &tree); err != nil {
		t.Fatal(err)
	}
	r, err := Unmarshal(source, []byte(content), tree)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestUnmarshalWorkloadKinds(t *testing.T) {
	for kind, workload := range map[string]bool{
		"CronJob":               true,
		"DaemonSet":             true,
		"Deployment":            true,
		"DeploymentConfig":      true,
		"Job":                   true,
		"ReplicaSet":            true,
		"ReplicationController": true,
		"StatefulSet":           true,
		"Service":               false,
		"ConfigMap":             false,
	} {
		content := "apiVersion: v1\nkind: " + kind + "\nmetadata:\n  name: thing\n"
		r := mustUnmarshal(t, kind+".yaml", content)
		if _, ok := r.(Workload); ok != workload {
			t.Errorf("%s: workload = %v, expected %v", kind, ok, workload)
		}
		assert.Equal(t, kind, r.GetKind())
		assert.Equal(t, "thing", r.GetName())
		assert.Equal(t, kind+"/thing", r.ResourceID().String())
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	_, err := Unmarshal("bad.yaml", []byte("kind: Deployment\nspec: [not, a, deployment]\n"), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	uerr, ok := err.(*usererr.Error)
	if !ok {
		t.Fatalf("expected a user error, got %T", err)
	}
	assert.True(t, usererr.IsUser(uerr))
	assert.Contains(t, uerr.Help, "bad.yaml")
}

const deploymentFixture = `apiVersion: extensions/v1beta1
kind: Deployment
metadata:
  name: shop
spec:
  replicas: 3
  selector:
    matchLabels:
      app: shop
  template:
    metadata:
      labels:
        app: shop
    spec:
      containers:
      - name: shop
        image: acme/shop:1.0
`

func TestDeploymentPodSpec(t *testing.T) {
	r := mustUnmarshal(t, "shop-deployment.yaml", deploymentFixture)
	d, ok := r.(*Deployment)
	if !ok {
		t.Fatalf("expected *Deployment, got %T", r)
	}
	assert.Equal(t, int32(3), *d.Spec.Replicas)
	assert.Equal(t, map[string]string{"app": "shop"}, d.PodLabelSelector().MatchLabels)

	spec := d.PodSpec()
	if assert.Len(t, spec.Containers, 1) {
		assert.Equal(t, "acme/shop:1.0", spec.Containers[0].Image)
	}
}

func TestSetPodSpecUpdatesTree(t *testing.T) {
	r := mustUnmarshal(t, "shop-deployment.yaml", deploymentFixture)
	d := r.(*Deployment)

	spec := d.PodSpec()
	spec.Containers[0].Image = "acme/shop:2.0"
	spec.Containers = append(spec.Containers, corev1.Container{Name: "sidecar", Image: "sidecar:1"})
	if err := d.SetPodSpec(spec); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, d.PodSpec().Containers, 2)

	// The generic tree is what gets serialized, so the update must be
	// visible there too.
	content, err := yaml.Marshal(d.Tree())
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, string(content), "acme/shop:2.0")
	assert.Contains(t, string(content), "sidecar:1")
	// Content outside the pod spec survives untouched.
	assert.Contains(t, string(content), "replicas: 3")
	// Top-level key order is preserved.
	assert.True(t, strings.Index(string(content), "apiVersion") < strings.Index(string(content), "kind"))
}

func TestCronJobPodSpecPath(t *testing.T) {
	content := `apiVersion: batch/v1beta1
kind: CronJob
metadata:
  name: sweeper
spec:
  schedule: "0 * * * *"
  jobTemplate:
    spec:
      template:
        spec:
          containers:
          - name: sweeper
            image: acme/sweeper:1.0
`
	r := mustUnmarshal(t, "sweeper-cronjob.yaml", content)
	cj, ok := r.(*CronJob)
	if !ok {
		t.Fatalf("expected *CronJob, got %T", r)
	}
	assert.Equal(t, "0 * * * *", cj.Spec.Schedule)
	assert.Equal(t, "acme/sweeper:1.0", cj.PodSpec().Containers[0].Image)
	assert.Nil(t, cj.PodLabelSelector())

	spec := cj.PodSpec()
	spec.Containers[0].Image = "acme/sweeper:2.0"
	if err := cj.SetPodSpec(spec); err != nil {
		t.Fatal(err)
	}
	out, err := yaml.Marshal(cj.Tree())
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, string(out), "acme/sweeper:2.0")
	assert.Contains(t, string(out), "schedule:")
}

func TestReplicationControllerSelector(t *testing.T) {
	content := `apiVersion: v1
kind: ReplicationController
metadata:
  name: shop
spec:
  selector:
    app: shop
    version: "1.0"
  template:
    spec:
      containers:
      - name: shop
        image: acme/shop:1.0
`
	r := mustUnmarshal(t, "shop-rc.yaml", content)
	rc := r.(*ReplicationController)
	selector := rc.PodLabelSelector()
	if assert.NotNil(t, selector) {
		assert.Equal(t, map[string]string{"app": "shop", "version": "1.0"}, selector.MatchLabels)
	}
}
