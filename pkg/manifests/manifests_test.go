package manifests

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"

	"github.com/fluxcd/manifestgen/pkg/fragment"
)

var testEnricher = fragment.Enricher{
	Versions: fragment.DefaultVersioning,
	Kinds:    fragment.NewKindMapping(),
}

func writeFragments(t *testing.T, files map[string]string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "manifests-test")
	if err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadCollection(t *testing.T) {
	dir := writeFragments(t, map[string]string{
		"shop-svc.yaml": "spec:\n  ports:\n  - port: 80\n",
		"shop-deployment.yaml": `spec:
  template:
    spec:
      containers:
      - name: shop
        image: acme/shop:1.0
`,
		// Not fragments; scanned over without complaint.
		"profiles.yaml": "- default\n",
		"README.md":     "docs\n",
	})
	defer os.RemoveAll(dir)

	collection, err := LoadCollection(testEnricher, dir, "shop", log.NewNopLogger())
	assert.NoError(t, err)
	assert.Equal(t, 2, collection.Len())

	// Resources come out in (kind, name) order, whatever the file order.
	resources := collection.Resources()
	assert.Equal(t, "Deployment", resources[0].GetKind())
	assert.Equal(t, "Service", resources[1].GetKind())

	assert.True(t, collection.HasKind("Service"))
	assert.True(t, collection.HasKind("CronJob", "Deployment"))
	assert.False(t, collection.HasKind("StatefulSet"))

	svc := collection.Find("Service", "shop")
	if assert.NotNil(t, svc) {
		assert.Equal(t, "v1", svc.GroupVersion())
	}
	assert.Nil(t, collection.Find("Service", "other"))

	workloads := collection.Workloads()
	if assert.Len(t, workloads, 1) {
		assert.Equal(t, "acme/shop:1.0", workloads[0].PodSpec().Containers[0].Image)
	}
}

func TestLoadCollectionAbortsOnFailure(t *testing.T) {
	dir := writeFragments(t, map[string]string{
		"shop-svc.yaml":   "",
		"shop-bogus.yaml": "",
	})
	defer os.RemoveAll(dir)

	_, err := LoadCollection(testEnricher, dir, "shop", log.NewNopLogger())
	assert.Error(t, err)
}

func TestLoadCollectionMissingDir(t *testing.T) {
	_, err := LoadCollection(testEnricher, "/no/such/dir", "shop", log.NewNopLogger())
	assert.Error(t, err)
}

func TestCollectionAddKeepsOrder(t *testing.T) {
	collection := &Collection{}
	for _, doc := range []string{
		"kind: Service\nmetadata:\n  name: b\n",
		"kind: ConfigMap\nmetadata:\n  name: z\n",
		"kind: Service\nmetadata:\n  name: a\n",
	} {
		r, err := ParseResource("test.yaml", []byte(doc))
		assert.NoError(t, err)
		collection.Add(r)
	}
	var ids []string
	for _, r := range collection.Resources() {
		ids = append(ids, r.ResourceID().String())
	}
	assert.Equal(t, []string{"ConfigMap/z", "Service/a", "Service/b"}, ids)
}

func TestCollectionPodLabelSelector(t *testing.T) {
	collection := &Collection{}
	r, err := ParseResource("test.yaml", []byte(`kind: Deployment
metadata:
  name: shop
spec:
  selector:
    matchLabels:
      app: shop
`))
	assert.NoError(t, err)
	collection.Add(r)

	selector, err := collection.PodLabelSelector()
	assert.NoError(t, err)
	if assert.NotNil(t, selector) {
		assert.Equal(t, map[string]string{"app": "shop"}, selector.MatchLabels)
	}
}
