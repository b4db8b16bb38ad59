package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
)

// AIHandler maneja las asesorías de IA por cliente. Las dos operaciones
// siempre responden 200 con texto: los fallos del modelo ya llegan aquí
// convertidos en los textos de respaldo.
type AIHandler struct {
	ai       *usecase.AIUseCase
	registry *usecase.CustomerUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(ai *usecase.AIUseCase, registry *usecase.CustomerUseCase) *AIHandler {
	return &AIHandler{ai: ai, registry: registry}
}

// Insight POST /api/customers/:id/insight
func (h *AIHandler) Insight(c *fiber.Ctx) error {
	customer, ok := h.findCustomer(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	insight := h.ai.GetInsight(c.Context(), customer)
	return c.JSON(dto.InsightResponse{CustomerID: customer.ID, Insight: insight})
}

// Notify POST /api/customers/:id/notify
func (h *AIHandler) Notify(c *fiber.Ctx) error {
	customer, ok := h.findCustomer(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	message, waURL := h.ai.NotifyCustomer(c.Context(), customer)
	return c.JSON(dto.OutreachResponse{CustomerID: customer.ID, Message: message, WhatsAppURL: waURL})
}

func (h *AIHandler) findCustomer(id string) (entity.Customer, bool) {
	for _, c := range h.registry.List() {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}
