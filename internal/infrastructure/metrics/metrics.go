package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zoo_procurement"

type Metrics struct {
	gatherer prometheus.Gatherer

	requestDuration *prometheus.HistogramVec
	requests        *prometheus.CounterVec
	apiErrors       *prometheus.CounterVec

	orderTransitions *prometheus.CounterVec
	invoiceAutogen   *prometheus.CounterVec
	invoiceStatus    *prometheus.CounterVec
}

// New registers every collector on reg. Pass prometheus.NewRegistry() in
// tests to keep registrations isolated.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		}, []string{"method", "path"}),
		apiErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of API responses with status >= 400",
		}, []string{"method", "path", "status"}),
		orderTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Order status changes by source and target status",
		}, []string{"from", "to"}),
		invoiceAutogen: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_autogen_total",
			Help:      "Invoice auto-generation attempts on delivery by result",
		}, []string{"result"}),
		invoiceStatus: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_status_changes_total",
			Help:      "Invoice status changes by target status",
		}, []string{"to"}),
	}
}

func (m *Metrics) OrderTransition(from, to string) {
	m.orderTransitions.With(prometheus.Labels{"from": from, "to": to}).Inc()
}

func (m *Metrics) InvoiceAutogen(result string) {
	m.invoiceAutogen.With(prometheus.Labels{"result": result}).Inc()
}

func (m *Metrics) InvoiceStatus(to string) {
	m.invoiceStatus.With(prometheus.Labels{"to": to}).Inc()
}

// Middleware tracks request count, duration and error responses.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			method, path := c.Request().Method, c.Path()
			m.requests.With(prometheus.Labels{"method": method, "path": path}).Inc()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = 500
				}
			}
			code := strconv.Itoa(status)
			m.requestDuration.With(prometheus.Labels{
				"method": method,
				"path":   path,
				"status": code,
			}).Observe(time.Since(start).Seconds())
			if status >= 400 {
				m.apiErrors.With(prometheus.Labels{"method": method, "path": path, "status": code}).Inc()
			}
			return err
		}
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
