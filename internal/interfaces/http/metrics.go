package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "flipcam_http_requests_total",
		Help: "Peticiones HTTP atendidas, por método, ruta y código de estado.",
	},
	[]string{"method", "path", "status"},
)

// MetricsMiddleware cuenta cada petición atendida. Usa la ruta registrada
// (no el path crudo) para no explotar la cardinalidad de la métrica.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		httpRequestsTotal.WithLabelValues(
			c.Method(),
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}

// MetricsHandler expone el registro Prometheus en formato texto.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
