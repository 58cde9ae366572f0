// Package metrics exposes Prometheus collectors for the API and the worker.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodmarket"

// Metrics owns a private registry so tests can build as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	ordersPlaced      prometheus.Counter
	orderAmountDue    prometheus.Counter
	orderTransitions  *prometheus.CounterVec
	paymentsRecorded  prometheus.Counter
	paymentAmount     prometheus.Counter
	notificationsSent *prometheus.CounterVec

	dbOpenConns prometheus.Gauge
	dbInUse     prometheus.Gauge
	dbWaitCount prometheus.Gauge
}

var _ service.BusinessMetrics = (*Metrics)(nil)

// New registers every collector plus the Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ordersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed",
		}),
		orderAmountDue: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_amount_due_minor_total",
			Help:      "Sum of amount due of placed orders, in minor units",
		}),
		orderTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Total number of order status transitions",
		}, []string{"from", "to"}),
		paymentsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Total number of payments recorded",
		}),
		paymentAmount: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_amount_minor_total",
			Help:      "Sum of recorded payments, in minor units",
		}),
		notificationsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_dispatched_total",
			Help:      "Notification deliveries per channel and outcome",
		}, []string{"channel", "outcome"}),
		dbOpenConns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Open connections in the Postgres pool",
		}),
		dbInUse: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Connections currently in use",
		}),
		dbWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for",
		}),
	}
}

// Registry returns the registry backing the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request. route is the router pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDBPool copies connection pool statistics into gauges.
func (m *Metrics) ObserveDBPool(stats sql.DBStats) {
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

func (m *Metrics) OrderPlaced(amountDue int64) {
	m.ordersPlaced.Inc()
	m.orderAmountDue.Add(float64(amountDue))
}

func (m *Metrics) OrderStatusChanged(from, to entity.OrderStatus) {
	m.orderTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) PaymentRecorded(amount int64) {
	m.paymentsRecorded.Inc()
	m.paymentAmount.Add(float64(amount))
}

func (m *Metrics) NotificationDispatched(channel string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.notificationsSent.WithLabelValues(channel, outcome).Inc()
}
