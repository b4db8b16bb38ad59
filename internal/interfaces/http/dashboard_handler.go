package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
)

// DashboardHandler expone las métricas del panel general.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
