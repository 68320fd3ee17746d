package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KoshiiX/Layanan-1/internal/observability"
)

// MetricsHandler exposes the in-memory request counters on the admin
// surface.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Show GET /api/admin/metrics.
func (h *MetricsHandler) Show(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"requests": h.metrics.RequestCounts(),
			"errors":   h.metrics.ErrorCounts(),
		},
	})
}
