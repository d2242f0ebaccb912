// Package metrics exposes the outcome of watch rounds as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/snapshot"
	"github.com/gabapcia/chaindiff/internal/watch"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statusConverged = "converged"
	statusDiverged  = "diverged"
	statusFailed    = "failed"
)

// Metrics holds the Prometheus collectors updated after every watch round.
type Metrics struct {
	snapshotLength   *prometheus.GaugeVec
	pairEqual        *prometheus.GaugeVec
	pairCommonPrefix *prometheus.GaugeVec
	membershipEqual  *prometheus.GaugeVec
	converged        *prometheus.GaugeVec
	roundsTotal      *prometheus.CounterVec
	roundDuration    *prometheus.HistogramVec
}

var _ watch.Recorder = (*Metrics)(nil)

// New creates the collectors and registers them with registry. A nil
// registry falls back to prometheus.DefaultRegisterer.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		snapshotLength: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chaindiff_snapshot_length",
				Help: "Number of records in the last snapshot served by a node",
			},
			[]string{"kind", "node"},
		),
		pairEqual: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chaindiff_pair_equal",
				Help: "1 when two consecutive nodes agree on their shared prefix, 0 otherwise",
			},
			[]string{"kind", "left", "right"},
		),
		pairCommonPrefix: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chaindiff_pair_common_prefix",
				Help: "Number of leading records two consecutive nodes agree on",
			},
			[]string{"kind", "left", "right"},
		),
		membershipEqual: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chaindiff_membership_equal",
				Help: "1 when two consecutive nodes hold the same records regardless of order, 0 otherwise",
			},
			[]string{"kind", "left", "right"},
		),
		converged: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chaindiff_converged",
				Help: "1 when every node agreed in the last round, 0 otherwise",
			},
			[]string{"kind"},
		),
		roundsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chaindiff_rounds_total",
				Help: "Total number of watch rounds by kind and outcome",
			},
			[]string{"kind", "status"},
		),
		roundDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chaindiff_round_duration_seconds",
				Help:    "Duration of successful watch rounds in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"kind"},
		),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (m *Metrics) RecordReport(report inspect.Report) {
	kind := string(report.Kind)

	for _, node := range report.Nodes {
		m.snapshotLength.WithLabelValues(kind, node.Node).Set(float64(node.Length))
	}

	for _, pair := range report.Pairs {
		m.pairEqual.WithLabelValues(kind, pair.Left, pair.Right).Set(boolToFloat(pair.Equal))
		m.pairCommonPrefix.WithLabelValues(kind, pair.Left, pair.Right).Set(float64(pair.CommonPrefix))
	}

	for _, membership := range report.Memberships {
		m.membershipEqual.WithLabelValues(kind, membership.Left, membership.Right).Set(boolToFloat(membership.Equal))
	}

	status := statusConverged
	if !report.Converged() {
		status = statusDiverged
	}

	m.converged.WithLabelValues(kind).Set(boolToFloat(report.Converged()))
	m.roundsTotal.WithLabelValues(kind, status).Inc()
	m.roundDuration.WithLabelValues(kind).Observe(report.Duration.Seconds())
}

func (m *Metrics) RecordFailure(kind snapshot.Kind) {
	m.roundsTotal.WithLabelValues(string(kind), statusFailed).Inc()
}

// Handler serves the metrics gathered by gatherer in the Prometheus text
// format. A nil gatherer falls back to prometheus.DefaultGatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
