package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks service-level counters. Registered against an injected
// registerer so tests can use an isolated registry.
type Metrics struct {
	validationsTotal  *prometheus.CounterVec
	syncTriggersTotal prometheus.Counter
	connectsTotal     prometheus.Counter
}

// NewMetrics registers the service counters with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		validationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_console_source_validations_total",
			Help: "Source validations by source type and outcome.",
		}, []string{"type", "outcome"}),
		syncTriggersTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "registry_console_manual_sync_triggers_total",
			Help: "Manual sync triggers issued.",
		}),
		connectsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "registry_console_instance_connects_total",
			Help: "Orphaned instances connected to a registry.",
		}),
	}
}

// observeValidation records a validation outcome.
func (m *Metrics) observeValidation(sourceType string, valid bool) {
	if m == nil {
		return
	}
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	m.validationsTotal.WithLabelValues(sourceType, outcome).Inc()
}

// observeSyncTrigger records an issued manual sync.
func (m *Metrics) observeSyncTrigger() {
	if m == nil {
		return
	}
	m.syncTriggersTotal.Inc()
}

// observeConnect records a successful instance connect.
func (m *Metrics) observeConnect() {
	if m == nil {
		return
	}
	m.connectsTotal.Inc()
}
