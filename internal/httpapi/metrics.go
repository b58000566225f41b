package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the scoring endpoints.
type Metrics struct {
	SignalsScored     *prometheus.CounterVec
	ScoreSeconds      prometheus.Histogram
	HeatmapsGenerated prometheus.Counter
	HeatmapIssues     prometheus.Histogram
}

// NewMetrics creates and registers the instruments on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SignalsScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "legisignal",
			Name:      "signals_scored_total",
			Help:      "Signals scored, partitioned by resulting risk level.",
		}, []string{"risk"}),
		ScoreSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "legisignal",
			Name:      "score_duration_seconds",
			Help:      "Wall time spent scoring one signal.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		HeatmapsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "legisignal",
			Name:      "heatmaps_generated_total",
			Help:      "Heat maps generated.",
		}),
		HeatmapIssues: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "legisignal",
			Name:      "heatmap_issues",
			Help:      "Issues per generated heat map.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(m.SignalsScored, m.ScoreSeconds, m.HeatmapsGenerated, m.HeatmapIssues)
	return m
}
