package generate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// ProbeConfig is the user's probe configuration, one of exec command,
// HTTP GET URL, or TCP port.
type ProbeConfig struct {
	InitialDelaySeconds int32  `json:"initialDelaySeconds,omitempty"`
	TimeoutSeconds      int32  `json:"timeoutSeconds,omitempty"`
	Exec                string `json:"exec,omitempty"`
	GetURL              string `json:"getUrl,omitempty"`
	TCPPort             string `json:"tcpPort,omitempty"`
}

// Probe builds the probe described by the configuration; a nil config
// gives a nil probe.
func (c *ProbeConfig) Probe() (*corev1.Probe, error) {
	if c == nil {
		return nil, nil
	}
	probe := &corev1.Probe{
		InitialDelaySeconds: c.InitialDelaySeconds,
		TimeoutSeconds:      c.TimeoutSeconds,
	}
	switch {
	case c.Exec != "":
		probe.Handler.Exec = &corev1.ExecAction{Command: strings.Fields(c.Exec)}
	case c.GetURL != "":
		u, err := url.Parse(c.GetURL)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing probe URL %q", c.GetURL)
		}
		action := &corev1.HTTPGetAction{
			Host:   u.Hostname(),
			Path:   u.Path,
			Scheme: corev1.URIScheme(strings.ToUpper(u.Scheme)),
		}
		if p := u.Port(); p != "" {
			action.Port = intstr.Parse(p)
		}
		probe.Handler.HTTPGet = action
	case c.TCPPort != "":
		probe.Handler.TCPSocket = &corev1.TCPSocketAction{Port: intstr.Parse(c.TCPPort)}
	default:
		return nil, nil
	}
	return probe, nil
}

// Spring Boot health-check auto-discovery. When the application has
// the actuator's HealthIndicator on its classpath, it will serve
// `/health` on the management port, so a sensible probe can be
// synthesized without any probe configuration.
const (
	springHealthIndicatorClass = "org.springframework.boot.actuate.health.HealthIndicator"
	managementPortProperty     = "management.port"
	serverPortProperty         = "server.port"
	defaultManagementPort      = 8080

	readinessInitialDelaySeconds = 10
	// leave long enough for the app to actually start
	livenessInitialDelaySeconds = 180
)

func discoverReadinessProbe(project Project) *corev1.Probe {
	return discoverHealthCheck(project, readinessInitialDelaySeconds)
}

func discoverLivenessProbe(project Project) *corev1.Probe {
	return discoverHealthCheck(project, livenessInitialDelaySeconds)
}

func discoverHealthCheck(project Project, initialDelay int32) *corev1.Probe {
	if !project.HasDependency(springHealthIndicatorClass) {
		return nil
	}
	port := defaultManagementPort
	for _, key := range []string{managementPortProperty, serverPortProperty} {
		if v := project.Property(key); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				port = p
				break
			}
		}
	}
	return &corev1.Probe{
		Handler: corev1.Handler{
			HTTPGet: &corev1.HTTPGetAction{
				Path: "/health",
				Port: intstr.FromInt(port),
			},
		},
		InitialDelaySeconds: initialDelay,
	}
}
