package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dockpanel/dockpanel/internal/core/ports"
	"github.com/dockpanel/dockpanel/internal/logging"
	"github.com/dockpanel/dockpanel/internal/metrics"
	"github.com/dockpanel/dockpanel/internal/session"
)

// ContainerHandler serves the container inventory.
type ContainerHandler struct {
	source ports.InventorySource
	codec  *session.Codec
}

// NewContainerHandler wires an inventory source and the session codec
// into the containers endpoint.
func NewContainerHandler(source ports.InventorySource, codec *session.Codec) *ContainerHandler {
	return &ContainerHandler{source: source, codec: codec}
}

// ListContainers returns the full inventory, running and stopped. The
// access gateway only checked that a cookie exists; this handler does the
// real verification and refuses anonymous or forged sessions.
func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	sess := h.codec.Load(c.Cookies(session.CookieName))
	if !sess.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	metrics.IncInventoryRequest()
	containers, err := h.source.ListContainers(c.Context())
	if err != nil {
		metrics.IncInventoryFailure()
		logging.Get().Error().Err(err).Msg("container listing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list containers",
		})
	}
	return c.JSON(containers)
}
