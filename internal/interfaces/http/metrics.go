package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// Metrics colectores Prometheus de la API. Usa un registry propio para poder
// instanciarse varias veces (tests) sin colisiones en el registry global.
type Metrics struct {
	registry         *prometheus.Registry
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	movementsTotal   *prometheus.CounterVec
	rejectedTotal    *prometheus.CounterVec
	lowStockAlerts   prometheus.Counter
}

// NewMetrics registra los colectores HTTP, de negocio y de runtime.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"code", "method", "path"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		requestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed.",
		}),
		movementsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estoque_movimentacoes_total",
			Help: "Movimentações registradas por categoria.",
		}, []string{"categoria"}),
		rejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estoque_movimentacoes_rejeitadas_total",
			Help: "Movimentações rejeitadas por motivo.",
		}, []string{"motivo"}),
		lowStockAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "estoque_alertas_baixo_total",
			Help: "Saídas que deixaram o produto em ou abaixo do estoque mínimo.",
		}),
	}
	m.registry.MustRegister(
		m.requestsTotal, m.requestDuration, m.requestsInFlight,
		m.movementsTotal, m.rejectedTotal, m.lowStockAlerts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware mide cada request. path es el patrón de la ruta (/api/produtos/:id), no la URL concreta.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.requestsInFlight.Inc()
		defer m.requestsInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		path := c.Route().Path
		m.requestsTotal.WithLabelValues(strconv.Itoa(status), c.Method(), path).Inc()
		m.requestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// ObserveMovement cuenta un movimiento aceptado. No-op si m es nil.
func (m *Metrics) ObserveMovement(category string, lowStock bool) {
	if m == nil {
		return
	}
	m.movementsTotal.WithLabelValues(category).Inc()
	if lowStock {
		m.lowStockAlerts.Inc()
	}
}

// ObserveRejectedMovement cuenta un movimiento rechazado. No-op si m es nil.
func (m *Metrics) ObserveRejectedMovement(err error) {
	if m == nil {
		return
	}
	reason := "otro"
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		reason = "estoque_insuficiente"
	case errors.Is(err, domain.ErrNotFound):
		reason = "produto_inexistente"
	case errors.Is(err, domain.ErrInvalidInput):
		reason = "validacao"
	}
	m.rejectedTotal.WithLabelValues(reason).Inc()
}
