package fragment

import (
	"sort"
	"strings"
)

// Versioning is the set of apiVersion strings to stamp onto enriched
// fragments, one per resource group. It is constructed once per run
// and threaded through all enrichment calls; it is never mutated, so
// it is safe to share.
type Versioning struct {
	Core       string
	Extensions string
	Apps       string
}

// DefaultVersioning reflects the API versions the generated manifests
// target unless configured otherwise.
var DefaultVersioning = Versioning{
	Core:       "v1",
	Extensions: "extensions/v1beta1",
	Apps:       "apps/v1beta1",
}

// ForKind gives the apiVersion a resource of the given kind resolves
// to. Deployments and Ingresses live in the extensions group,
// StatefulSets in the apps group, and everything else in core.
func (v Versioning) ForKind(kind string) string {
	switch kind {
	case "Deployment", "Ingress":
		return v.Extensions
	case "StatefulSet":
		return v.Apps
	default:
		return v.Core
	}
}

// kindMappings associates short filename tokens with canonical
// resource kind names. A kind may have several aliases; the reverse
// direction keeps exactly one token per kind (the last alias listed),
// used when generating suffixed file names.
var kindMappings = []struct{ token, kind string }{
	{"cm", "ConfigMap"},
	{"configmap", "ConfigMap"},
	{"cronjob", "CronJob"},
	{"cr", "ClusterRole"},
	{"crole", "ClusterRole"},
	{"clusterrole", "ClusterRole"},
	{"crb", "ClusterRoleBinding"},
	{"clusterrb", "ClusterRoleBinding"},
	{"cj", "CronJob"},
	{"deployment", "Deployment"},
	{"is", "ImageStream"},
	{"istag", "ImageStreamTag"},
	{"lr", "LimitRange"},
	{"limitrange", "LimitRange"},
	{"ns", "Namespace"},
	{"namespace", "Namespace"},
	{"oauthclient", "OAuthClient"},
	{"pb", "PolicyBinding"},
	{"pv", "PersistentVolume"},
	{"pvc", "PersistentVolumeClaim"},
	{"project", "Project"},
	{"pr", "ProjectRequest"},
	{"rq", "ResourceQuota"},
	{"resourcequota", "ResourceQuota"},
	{"role", "Role"},
	{"rb", "RoleBinding"},
	{"rolebinding", "RoleBinding"},
	{"rbr", "RoleBindingRestriction"},
	{"rolebindingrestriction", "RoleBindingRestriction"},
	{"secret", "Secret"},
	{"service", "Service"},
	{"svc", "Service"},
	{"sa", "ServiceAccount"},
	{"rc", "ReplicationController"},
	{"rs", "ReplicaSet"},
	{"daemonset", "DaemonSet"},
	{"ds", "DaemonSet"},
	{"statefulset", "StatefulSet"},

	// OpenShift resources
	{"bc", "BuildConfig"},
	{"dc", "DeploymentConfig"},
	{"deploymentconfig", "DeploymentConfig"},
	{"route", "Route"},
	{"template", "Template"},
}

// KindMapping is the bidirectional association between filename tokens
// and resource kinds. Construct one with NewKindMapping and pass it by
// reference; it is immutable after construction, so it is safe to
// share between goroutines.
type KindMapping struct {
	kindForToken map[string]string
	tokenForKind map[string]string
	tokens       []string
}

func NewKindMapping() *KindMapping {
	m := &KindMapping{
		kindForToken: make(map[string]string, len(kindMappings)),
		tokenForKind: make(map[string]string, len(kindMappings)),
	}
	for _, entry := range kindMappings {
		m.kindForToken[entry.token] = entry.kind
		m.tokenForKind[entry.kind] = entry.token
	}
	for token := range m.kindForToken {
		m.tokens = append(m.tokens, token)
	}
	sort.Strings(m.tokens)
	return m
}

// KindForToken resolves a filename token (case-insensitively) to a
// canonical kind name.
func (m *KindMapping) KindForToken(token string) (string, bool) {
	kind, ok := m.kindForToken[strings.ToLower(token)]
	return kind, ok
}

// TokenForKind gives the canonical filename token for a kind.
func (m *KindMapping) TokenForKind(kind string) (string, bool) {
	token, ok := m.tokenForKind[kind]
	return token, ok
}

// Tokens lists every known filename token, sorted, for error messages.
func (m *KindMapping) Tokens() []string {
	return m.tokens
}

// NameWithSuffix appends the kind's canonical token to a resource
// name, for use as a manifest file name (e.g., `myapp` + `Service` ->
// `myapp-svc`). Kinds without a token leave the name alone.
func (m *KindMapping) NameWithSuffix(name, kind string) string {
	if token, ok := m.tokenForKind[kind]; ok {
		return name + "-" + token
	}
	return name
}
