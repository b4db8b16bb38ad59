package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	"github.com/edsonpereira/nexus-crm/internal/validation"
)

// SettingsHandler expone la configuración editable del CRM.
type SettingsHandler struct {
	uc        *usecase.SettingsUseCase
	validator *validation.Validator
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase, validator *validation.Validator) *SettingsHandler {
	return &SettingsHandler{uc: uc, validator: validator}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current())
}

// Update PUT /api/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validator.Struct(in); err != nil {
		return validationError(c, err)
	}
	cfg, err := h.uc.Save(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cfg)
}

// Sync POST /api/settings/sync, sincronización manual.
func (h *SettingsHandler) Sync(c *fiber.Ctx) error {
	if h.uc.WebhookURL() == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_WEBHOOK", Message: "no hay URL de webhook configurada"})
	}
	h.uc.StartManualSync()
	return c.SendStatus(fiber.StatusAccepted)
}
