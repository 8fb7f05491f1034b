package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls counts tool invocations by outcome.
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Total number of tool invocations",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors counts failed calculations by error kind.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Number of failed calculations",
		},
		[]string{"tool_name", "error_type"},
	)

	// SchedulePayments observes the number of payments in generated schedules.
	SchedulePayments = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schedule_payments",
			Help:    "Number of payments in generated schedules",
			Buckets: []float64{12, 36, 60, 120, 180, 240, 360, 480, 600, 1200},
		},
	)

	// CacheLookups counts schedule cache lookups by result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_cache_lookups_total",
			Help: "Schedule cache lookups",
		},
		[]string{"result"},
	)
)
