package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements ports.MetricsCollector using Prometheus
type Collector struct {
	predictions        *prometheus.CounterVec
	predictionDuration *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec
	remoteCalls        *prometheus.CounterVec
	remoteLatency      *prometheus.HistogramVec
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		predictions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "diapredict_predictions_total",
				Help: "Total number of prediction requests by outcome",
			},
			[]string{"outcome"},
		),
		predictionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "diapredict_prediction_duration_seconds",
				Help:    "End-to-end prediction handling duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"outcome"},
		),
		validationFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "diapredict_validation_failures_total",
				Help: "Total number of input validation failures by feature",
			},
			[]string{"feature"},
		),
		remoteCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "diapredict_remote_calls_total",
				Help: "Total number of calls to the inference endpoint by status",
			},
			[]string{"status"},
		),
		remoteLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "diapredict_remote_latency_seconds",
				Help:    "Inference endpoint call latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"status"},
		),
	}
}

// RecordPrediction records the outcome and duration of one prediction request
func (c *Collector) RecordPrediction(outcome string, duration time.Duration) {
	c.predictions.WithLabelValues(outcome).Inc()
	c.predictionDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordRemoteCall records one call to the inference endpoint
func (c *Collector) RecordRemoteCall(status string, duration time.Duration) {
	c.remoteCalls.WithLabelValues(status).Inc()
	c.remoteLatency.WithLabelValues(status).Observe(duration.Seconds())
}

// IncValidationFailure increments the validation failure count for a feature
func (c *Collector) IncValidationFailure(feature string) {
	c.validationFailures.WithLabelValues(feature).Inc()
}
