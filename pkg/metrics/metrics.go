package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal    *prometheus.CounterVec
	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Gauge

	// Доменные метрики
	ScheduleConversions  *prometheus.CounterVec
	CollisionsFound      prometheus.Counter
	UnderMinimumSections *prometheus.CounterVec
}

// New регистрирует метрики в reg. В production передаётся prometheus.DefaultRegisterer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUse: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdle: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCount: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		ScheduleConversions: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_conversions_total",
			Help:        "Grid/range conversions performed",
			ConstLabels: labels,
		}, []string{"direction"}),
		CollisionsFound: f.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_collisions_found_total",
			Help:        "Collisions found by collision checks",
			ConstLabels: labels,
		}),
		UnderMinimumSections: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "application_sections_under_minimum_total",
			Help:        "Application sections whose selection is under the declared minimum duration",
			ConstLabels: labels,
		}, []string{"policy"}),
	}
}

// RecordConversion учитывает преобразование сетка/интервалы ("to_ranges" или "to_cells")
func (m *Metrics) RecordConversion(direction string) {
	if m == nil {
		return
	}
	m.ScheduleConversions.WithLabelValues(direction).Inc()
}

// RecordCollisions учитывает найденные пересечения бронирований
func (m *Metrics) RecordCollisions(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CollisionsFound.Add(float64(n))
}

// RecordUnderMinimum учитывает секции с недостаточной длительностью
func (m *Metrics) RecordUnderMinimum(policy string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.UnderMinimumSections.WithLabelValues(policy).Add(float64(n))
}
