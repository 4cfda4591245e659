package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics colectores Prometheus del servicio de inventario.
type Metrics struct {
	registry        *prometheus.Registry
	skipped         *prometheus.CounterVec
	viewDuration    *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics crea un registry propio con las métricas del servicio.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_skipped_movements_total",
		Help: "Movimientos descartados al calcular inventario, por motivo.",
	}, []string{"reason"})
	viewDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_view_load_seconds",
		Help:    "Tiempo de lectura del almacén por vista de inventario.",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_http_requests_total",
		Help: "Peticiones HTTP por ruta y código.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_http_request_duration_seconds",
		Help:    "Duración de peticiones HTTP por ruta.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	registry.MustRegister(skipped, viewDuration, requests, duration)
	return &Metrics{
		registry:        registry,
		skipped:         skipped,
		viewDuration:    viewDuration,
		requestsTotal:   requests,
		requestDuration: duration,
	}
}

// SkippedMovements suma n movimientos descartados por reason.
func (m *Metrics) SkippedMovements(reason string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.skipped.WithLabelValues(reason).Add(float64(n))
}

// ObserveView registra la duración de lectura de una vista.
func (m *Metrics) ObserveView(view string, d time.Duration) {
	if m == nil {
		return
	}
	m.viewDuration.WithLabelValues(view).Observe(d.Seconds())
}

// Handler endpoint /metrics.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Middleware mide cada petición con el patrón de ruta, no la URL concreta.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Registerer expone el registry para métricas adicionales.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registry
}
