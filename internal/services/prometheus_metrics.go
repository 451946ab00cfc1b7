package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded *prometheus.CounterVec
	summariesBuilt       *prometheus.CounterVec
	summaryDuration      prometheus.Histogram
	reportDuration       prometheus.Histogram
	registrationsTotal   prometheus.Counter
	loginsTotal          prometheus.Counter
	loginFailuresTotal   *prometheus.CounterVec
	demoSeedsTotal       prometheus.Counter
	apiErrorsTotal       *prometheus.CounterVec
	ownerTransactions    *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		summariesBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summaries_built_total",
				Help: "Total number of summaries and reports built",
			},
			[]string{"scope"},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "summary_build_duration_milliseconds",
				Help:    "Dashboard summary build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_build_duration_milliseconds",
				Help:    "Period report build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		registrationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auth_registrations_total",
				Help: "Total number of user registrations",
			},
		),
		loginsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auth_logins_total",
				Help: "Total number of successful logins",
			},
		),
		loginFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_login_failures_total",
				Help: "Total number of failed login attempts by reason",
			},
			[]string{"reason"},
		),
		demoSeedsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "demo_seeds_total",
				Help: "Total number of demo data seeding runs",
			},
		),
		apiErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by status code",
			},
			[]string{"status"},
		),
		ownerTransactions: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "owner_transactions",
				Help: "Transaction count observed for an owner during seeding",
			},
			[]string{"source"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transactions_recorded":
		if txType := tags["type"]; txType != "" {
			m.transactionsRecorded.WithLabelValues(txType).Inc()
		}
	case "summaries_built":
		if scope := tags["scope"]; scope != "" {
			m.summariesBuilt.WithLabelValues(scope).Inc()
		}
	case "auth_registrations":
		m.registrationsTotal.Inc()
	case "auth_logins":
		m.loginsTotal.Inc()
	case "auth_login_failures":
		if reason := tags["reason"]; reason != "" {
			m.loginFailuresTotal.WithLabelValues(reason).Inc()
		}
	case "demo_seeds":
		m.demoSeedsTotal.Inc()
	case "api_errors":
		if status := tags["status"]; status != "" {
			m.apiErrorsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "summary_build":
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	case "report_build":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "owner_transactions" {
		source := tags["source"]
		if source == "" {
			source = "unknown"
		}
		m.ownerTransactions.WithLabelValues(source).Set(value)
	}
}
