package dto

import (
	"github.com/shopspring/decimal"

	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
)

// CustomerRequest entrada para crear o editar un cliente. El mismo cuerpo
// sirve para ambas operaciones; en edición el ID viene por la ruta.
// Value no lleva tag de validación porque decimal.Decimal no es un tipo que
// el validador entienda; el caso de uso rechaza valores negativos.
type CustomerRequest struct {
	Name   string                `json:"name" validate:"required,min=1,max=200"`
	Phone  string                `json:"phone" validate:"required,min=1,max=30"`
	Email  string                `json:"email" validate:"omitempty,email"`
	Value  decimal.Decimal       `json:"value"`
	Date   string                `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status entity.CustomerStatus `json:"status" validate:"omitempty,oneof=Active Overdue Expired"`
	Notes  string                `json:"notes" validate:"max=2000"`
}

// CustomerListResponse listado filtrado de clientes.
type CustomerListResponse struct {
	Items []entity.Customer `json:"items"`
	Total int               `json:"total"`
}
