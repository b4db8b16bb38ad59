package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
)

// NotificationHandler expone la bitácora de notificaciones.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List GET /api/notifications (la más reciente primero).
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Clear DELETE /api/notifications, el "Limpar tudo" de la campana.
func (h *NotificationHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
