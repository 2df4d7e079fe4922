package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "formsight"
)

var (
	FrameScoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "session", "frame_score_duration_seconds"),
		Help:    "Duration of per-frame scoring in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{"sport"})
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "session", "active"),
		Help: "Number of sessions currently held in memory",
	})
	ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "session", "reports_generated"),
		Help: "Number of session reports generated",
	}, []string{"sport", "level"})
	SessionsReaped = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "session", "reaped"),
		Help: "Number of idle sessions evicted by the reaper",
	})
)
