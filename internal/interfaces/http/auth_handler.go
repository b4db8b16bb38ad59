package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/edsonpereira/nexus-crm/internal/application/auth"
	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/domain"
	"github.com/edsonpereira/nexus-crm/internal/validation"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	validator *validation.Validator
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{uc: uc, validator: validator}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validator.Struct(in); err != nil {
		return validationError(c, err)
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
