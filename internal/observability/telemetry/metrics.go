package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Report pipeline metrics
	ReportsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enerscope_reports_generated_total",
		Help: "Report generation attempts by period and outcome",
	}, []string{"period", "status"})

	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "enerscope_render_duration_seconds",
		Help:    "Time spent rendering a report view",
		Buckets: prometheus.DefBuckets,
	})

	StaleResponsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "enerscope_stale_responses_total",
		Help: "Settled responses discarded because a newer request superseded them",
	})

	// Upstream / infrastructure metrics
	UpstreamLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "enerscope_upstream_latency_seconds",
		Help:    "Latency of the analytics backend exchange",
		Buckets: prometheus.DefBuckets,
	})

	ReportCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enerscope_report_cache_total",
		Help: "Rendered-report cache lookups by result",
	}, []string{"result"})

	ReportSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "enerscope_report_subscribers",
		Help: "Connected report stream subscribers",
	})
)
