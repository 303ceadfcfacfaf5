package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los contadores e histogramas Prometheus de la aplicación.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Onboarding de tenants
	OnboardingTotal   *prometheus.CounterVec // result: committed | failed | partial
	OnboardingStepDur *prometheus.HistogramVec

	// Resolución de tenant
	TenantContextMissing prometheus.Counter
	TenantNotFound       prometheus.Counter
}

// New registra las métricas con el prefijo configurado.
func New(prefix string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total de peticiones HTTP",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		OnboardingTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_tenant_onboarding_total",
				Help: "Total de onboardings de tenants por resultado",
			},
			[]string{"result"},
		),
		OnboardingStepDur: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_tenant_onboarding_step_duration_seconds",
				Help:    "Duración por paso del onboarding (catalog, provision, seed)",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"step"},
		),
		TenantContextMissing: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_tenant_context_missing_total",
				Help: "Peticiones tenant-scoped sin header de tenant",
			},
		),
		TenantNotFound: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_tenant_not_found_total",
				Help: "Peticiones con tenant no resuelto a un schema aprovisionado",
			},
		),
	}
}

// Middleware instrumenta cada petición HTTP (total + duración por ruta y status).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
