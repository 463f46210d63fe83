package manifests

import (
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	fragmentsRead = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Namespace: "manifestgen",
		Subsystem: "manifests",
		Name:      "fragments_read_total",
		Help:      "Number of fragment files read and enriched.",
	}, []string{"success"})
	loadDuration = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Namespace: "manifestgen",
		Subsystem: "manifests",
		Name:      "load_duration_seconds",
		Help:      "Duration of loading a fragment directory into a collection.",
		Buckets:   stdprometheus.DefBuckets,
	}, []string{"success"})
)
