package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analysesTotal  *prometheus.CounterVec
	sectionErrors  *prometheus.CounterVec
	predictedPrice *prometheus.GaugeVec
	duration       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chainlens_analyses_total",
				Help: "Total number of analysis sections computed",
			},
			[]string{"chain", "section"},
		),
		sectionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chainlens_section_errors_total",
				Help: "Total number of analysis sections degraded to an error result",
			},
			[]string{"section"},
		),
		predictedPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chainlens_predicted_price",
				Help: "Last predicted price per chain",
			},
			[]string{"chain"},
		),
		duration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chainlens_section_duration_seconds",
				Help:    "Duration of analysis sections in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"section"},
		),
	}
}

// RecordAnalysis records a completed analysis section for a chain.
func (r *Recorder) RecordAnalysis(chain, section string) {
	r.analysesTotal.WithLabelValues(chain, section).Inc()
}

// RecordSectionError records a section that degraded to an error result.
func (r *Recorder) RecordSectionError(section string) {
	r.sectionErrors.WithLabelValues(section).Inc()
}

// RecordDuration records section compute time in seconds.
func (r *Recorder) RecordDuration(section string, seconds float64) {
	r.duration.WithLabelValues(section).Observe(seconds)
}

// RecordPredictedPrice records the last predicted price for a chain.
func (r *Recorder) RecordPredictedPrice(chain string, price float64) {
	r.predictedPrice.WithLabelValues(chain).Set(price)
}
