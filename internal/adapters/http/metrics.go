package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// MetricsHandler bridges a net/http exposition handler (Prometheus) into
// fiber.
func MetricsHandler(h http.Handler) fiber.Handler {
	return adaptor.HTTPHandler(h)
}
