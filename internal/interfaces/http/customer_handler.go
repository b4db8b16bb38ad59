package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	"github.com/edsonpereira/nexus-crm/internal/domain"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/internal/validation"
)

// exportFilename nombre del archivo CSV descargado.
const exportFilename = "clientes_nexus_export.csv"

// CustomerHandler maneja las peticiones HTTP del registro de clientes.
type CustomerHandler struct {
	uc        *usecase.CustomerUseCase
	validator *validation.Validator
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, validator *validation.Validator) *CustomerHandler {
	return &CustomerHandler{uc: uc, validator: validator}
}

// List GET /api/customers?search=&status=
// Sin parámetros devuelve la colección completa en orden de inserción.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	search := c.Query("search", "")
	status := c.Query("status", entity.StatusFilterAll)
	items := h.uc.Filter(search, status)
	return c.JSON(dto.CustomerListResponse{Items: items, Total: len(items)})
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validator.Struct(in); err != nil {
		return validationError(c, err)
	}
	customer, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Code: "VALIDATION", Fields: map[string]string{"value": "Insira um valor válido"},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validator.Struct(in); err != nil {
		return validationError(c, err)
	}
	customer, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Code: "VALIDATION", Fields: map[string]string{"value": "Insira um valor válido"},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if customer == nil {
		// El registro no muta nada ante un ID desconocido; en la API eso es un 404
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
// La confirmación previa ("¿Deseja realmente excluir?") es del cliente de la API.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	removed, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearAll DELETE /api/customers
func (h *CustomerHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.uc.ClearAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCSV GET /api/customers/export
func (h *CustomerHandler) ExportCSV(c *fiber.Ctx) error {
	csv := h.uc.ExportCSV()
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.SendString(csv)
}
