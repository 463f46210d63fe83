package resource

// Resource is a descriptor for a single Kubernetes or OpenShift object
// that came from (or is destined for) a manifest file.
type Resource interface {
	ResourceID() ID
	// Source gives the path of the file the resource was read from,
	// for error messages; it may be empty for synthesized resources.
	Source() string
	// Bytes gives the serialized form the resource was parsed from.
	Bytes() []byte

	GroupVersion() string
	GetKind() string
	GetName() string
}
