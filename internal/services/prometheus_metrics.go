package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesTotal            *prometheus.CounterVec
	budgetsTotal             *prometheus.CounterVec
	categoriesTotal          *prometheus.CounterVec
	reportsGenerated         *prometheus.CounterVec
	reportGenerationDuration prometheus.Histogram
	backupOperations         *prometheus.CounterVec
	storedExpenses           prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_operations_total",
				Help: "Total number of expense write operations",
			},
			[]string{"operation"},
		),
		budgetsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_operations_total",
				Help: "Total number of budget write operations",
			},
			[]string{"operation"},
		),
		categoriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_operations_total",
				Help: "Total number of category write operations",
			},
			[]string{"operation"},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_documents_total",
				Help: "Total number of report document generation runs",
			},
			[]string{"status"},
		),
		reportGenerationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report document generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		backupOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backup_operations_total",
				Help: "Total number of backup export and import operations",
			},
			[]string{"operation"},
		),
		storedExpenses: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stored_expenses_total",
				Help: "Current number of stored expenses",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "expense_created":
		m.expensesTotal.WithLabelValues("create").Inc()
	case "expense_updated":
		m.expensesTotal.WithLabelValues("update").Inc()
	case "expense_deleted":
		m.expensesTotal.WithLabelValues("delete").Inc()
	case "budget_created":
		m.budgetsTotal.WithLabelValues("create").Inc()
	case "budget_deleted":
		m.budgetsTotal.WithLabelValues("delete").Inc()
	case "category_created":
		m.categoriesTotal.WithLabelValues("create").Inc()
	case "category_deleted":
		m.categoriesTotal.WithLabelValues("delete").Inc()
	case "report_generated_success":
		m.reportsGenerated.WithLabelValues("success").Inc()
	case "report_generated_failed":
		m.reportsGenerated.WithLabelValues("failed").Inc()
	case "report_generation_rejected":
		m.reportsGenerated.WithLabelValues("rejected").Inc()
	case "backup_exported":
		m.backupOperations.WithLabelValues("export").Inc()
	case "backup_imported":
		m.backupOperations.WithLabelValues("import").Inc()
	case "backup_import_failed":
		m.backupOperations.WithLabelValues("import_failed").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_generation":
		m.reportGenerationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "stored_expenses":
		m.storedExpenses.Set(value)
	}
}
