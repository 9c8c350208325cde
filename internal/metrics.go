package internal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

// Metrics counts generated forms and rejected requests.
type Metrics struct {
	registry          *prometheus.Registry
	formsCreated      *prometheus.CounterVec
	checksumsCreated  prometheus.Counter
	validationsFailed *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		formsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cpay",
			Name:      "forms_created_total",
			Help:      "Payment forms created, by target environment.",
		}, []string{"environment"}),
		checksumsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "cpay",
			Name:      "checksums_created_total",
			Help:      "Checksums computed from validated field maps.",
		}),
		validationsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cpay",
			Name:      "validation_failures_total",
			Help:      "Payment requests rejected by field validation, by reason.",
		}, []string{"reason"}),
	}
}

func (m *Metrics) formCreated(production bool) {
	if m == nil {
		return
	}
	environment := "test"
	if production {
		environment = "production"
	}
	m.formsCreated.WithLabelValues(environment).Inc()
}

func (m *Metrics) checksumCreated() {
	if m == nil {
		return
	}
	m.checksumsCreated.Inc()
}

func (m *Metrics) validationFailed(err error) {
	if m == nil {
		return
	}
	reason := "other"
	switch err.(type) {
	case *MissingFieldsError:
		reason = "missing_fields"
	case *InvalidFieldsError:
		reason = "invalid_fields"
	}
	m.validationsFailed.WithLabelValues(reason).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
