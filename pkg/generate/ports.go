package generate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
)

var (
	ErrInvalidPortSpec = errors.New("invalid port mapping")

	placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
)

// ContainerPorts expands a list of port-mapping strings, as found in
// an image's build configuration, into container port entries. Each
// entry has the form
//
//   [hostIP:][hostPort:]containerPort[/protocol]
//
// `${...}` placeholders are resolved against the project properties
// before parsing. A host port given as a placeholder with no matching
// property means "dynamically assigned", and is omitted from the
// result; an unresolvable container port is an error.
func ContainerPorts(specs []string, properties map[string]string) ([]corev1.ContainerPort, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	var ports []corev1.ContainerPort
	for _, spec := range specs {
		port, err := parsePortSpec(spec, properties)
		if err != nil {
			return nil, err
		}
		ports = append(ports, port)
	}
	return ports, nil
}

func parsePortSpec(spec string, properties map[string]string) (corev1.ContainerPort, error) {
	var port corev1.ContainerPort

	mapping := spec
	var protocol string
	if idx := strings.IndexByte(mapping, '/'); idx >= 0 {
		mapping, protocol = mapping[:idx], mapping[idx+1:]
		if protocol == "" {
			return port, errors.Wrapf(ErrInvalidPortSpec, "empty protocol in %q", spec)
		}
		port.Protocol = corev1.Protocol(strings.ToUpper(protocol))
	}

	parts := strings.Split(mapping, ":")
	var hostIP, hostPort, containerPort string
	switch len(parts) {
	case 1:
		containerPort = parts[0]
	case 2:
		hostPort, containerPort = parts[0], parts[1]
	case 3:
		hostIP, hostPort, containerPort = parts[0], parts[1], parts[2]
	default:
		return port, errors.Wrapf(ErrInvalidPortSpec, "%q has too many segments", spec)
	}

	value, err := resolvePort(containerPort, properties)
	if err != nil {
		return port, errors.Wrapf(err, "container port of %q", spec)
	}
	port.ContainerPort = value

	if hostPort != "" {
		value, err := resolvePort(hostPort, properties)
		switch {
		case err != nil && placeholderPattern.MatchString(hostPort):
			// An unresolved host port placeholder means the port is
			// assigned dynamically; leave it out.
		case err != nil:
			return port, errors.Wrapf(err, "host port of %q", spec)
		default:
			port.HostPort = value
		}
	}
	port.HostIP = hostIP
	return port, nil
}

// resolvePort substitutes `${...}` placeholders from the properties
// and parses the result as a port number.
func resolvePort(s string, properties map[string]string) (int32, error) {
	resolved := placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := m[2 : len(m)-1]
		if v, ok := properties[key]; ok {
			return v
		}
		return m
	})
	value, err := strconv.ParseInt(resolved, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPortSpec, "cannot parse %q as a port number", resolved)
	}
	return int32(value), nil
}
