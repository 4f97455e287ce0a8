// Package metrics Prometheus-метрики HTTP-слоя сервиса
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	notifierEvents   *prometheus.CounterVec
	cleanupDeletions prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		notifierEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_events_published_total",
			Help:        "Total number of appointment change events published",
			ConstLabels: constLabels,
		}, []string{"action"}),

		cleanupDeletions: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_cleaned_total",
			Help:        "Total number of expired appointments removed by cleanup",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveRequest записывает метрики одного HTTP-запроса
func (m *Metrics) ObserveRequest(method, path, status string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, status).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncEventPublished увеличивает счётчик опубликованных событий изменения записей
func (m *Metrics) IncEventPublished(action string) {
	m.notifierEvents.WithLabelValues(action).Inc()
}

// AddCleaned увеличивает счётчик удалённых просроченных записей
func (m *Metrics) AddCleaned(n int64) {
	m.cleanupDeletions.Add(float64(n))
}
