package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRequests counts HTTP requests by route and status code
	MetricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hashlab_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "status"})

	// MetricRequestDuration tracks handler latency
	MetricRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hashlab_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// MetricAttacks counts simulated attacks by attack type
	MetricAttacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hashlab_simulated_attacks_total",
		Help: "Total simulated attacks by attack type",
	}, []string{"attack_type"})

	// MetricAttackSeconds records the fabricated attack durations
	MetricAttackSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hashlab_simulated_attack_seconds",
		Help:    "Fabricated duration reported by simulated attacks",
		Buckets: []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5},
	})

	// MetricHashesGenerated counts stored hashes
	MetricHashesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hashlab_hashes_generated_total",
		Help: "Total SHA-256 hashes generated and stored",
	})

	// MetricArtifactEvents counts filesystem events seen on artifacts
	MetricArtifactEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hashlab_artifact_events_total",
		Help: "Filesystem events observed on artifacts by artifact and operation",
	}, []string{"artifact", "op"})
)
