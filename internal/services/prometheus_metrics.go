package services

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the engine's Prometheus instruments. A nil *Metrics is
// a valid no-op recorder, so tests can construct services without
// touching the default registry.
type Metrics struct {
	mutationsTotal     *prometheus.CounterVec
	materializedTotal  prometheus.Counter
	contributionsTotal prometheus.Counter
	milestonesTotal    *prometheus.CounterVec
	goalsCompleted     prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		mutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_mutations_total",
				Help: "Total number of domain state mutations by entity and operation",
			},
			[]string{"entity", "operation"},
		),
		materializedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_recurring_materialized_total",
				Help: "Total number of transactions materialized from recurring templates",
			},
		),
		contributionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_goal_contributions_total",
				Help: "Total number of goal contributions recorded",
			},
		),
		milestonesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_goal_milestones_total",
				Help: "Total number of goal milestone crossings by milestone percent",
			},
			[]string{"milestone"},
		),
		goalsCompleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_goals_completed_total",
				Help: "Total number of goals reaching their target amount",
			},
		),
	}
}

func (m *Metrics) RecordMutation(entity, operation string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(entity, operation).Inc()
}

func (m *Metrics) RecordMaterialized() {
	if m == nil {
		return
	}
	m.materializedTotal.Inc()
}

func (m *Metrics) RecordContribution() {
	if m == nil {
		return
	}
	m.contributionsTotal.Inc()
}

func (m *Metrics) RecordMilestone(milestone int) {
	if m == nil {
		return
	}
	m.milestonesTotal.WithLabelValues(strconv.Itoa(milestone)).Inc()
	if milestone == 100 {
		m.goalsCompleted.Inc()
	}
}
