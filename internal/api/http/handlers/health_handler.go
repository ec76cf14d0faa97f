package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// StorePinger reports document-store connectivity.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       StorePinger
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, store StorePinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: store}
}

// Root handles GET / with a plain liveness line.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString(h.serviceName + " running")
}

// Ready reports readiness by pinging the document store.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "DEPENDENCY_UNAVAILABLE",
					"message": "document store unavailable",
					"details": fiber.Map{"mongodb": err.Error()},
				},
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ready",
		"service": h.serviceName,
		"version": h.version,
	})
}
