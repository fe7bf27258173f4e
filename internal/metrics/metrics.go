// Package metrics exposes the gateway's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors for the document pipeline.
type Metrics struct {
	DocumentsBuilt       prometheus.Counter
	ValidationsTotal     *prometheus.CounterVec
	SubmissionsTotal     *prometheus.CounterVec
	SubmissionDuration   prometheus.Histogram
	ValidationViolations prometheus.Counter
}

// New registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DocumentsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "einvoice_documents_built_total",
			Help: "Documents assembled into the wire format.",
		}),
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "einvoice_validations_total",
			Help: "Validation passes by outcome.",
		}, []string{"outcome"}),
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "einvoice_submissions_total",
			Help: "Submission attempts by outcome.",
		}, []string{"outcome"}),
		SubmissionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "einvoice_submission_duration_seconds",
			Help:    "Wall time of documentsubmissions calls.",
			Buckets: prometheus.DefBuckets,
		}),
		ValidationViolations: factory.NewCounter(prometheus.CounterOpts{
			Name: "einvoice_validation_violations_total",
			Help: "Individual field violations reported.",
		}),
	}
}
