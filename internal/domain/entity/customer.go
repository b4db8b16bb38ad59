package entity

import "github.com/shopspring/decimal"

// CustomerStatus estado del contrato de un cliente. Enumeración cerrada.
type CustomerStatus string

const (
	StatusActive  CustomerStatus = "Active"
	StatusOverdue CustomerStatus = "Overdue"
	StatusExpired CustomerStatus = "Expired"
)

// StatusFilterAll valor especial de filtro que acepta cualquier estado.
const StatusFilterAll = "All"

// Valid indica si el estado pertenece a la enumeración.
func (s CustomerStatus) Valid() bool {
	switch s {
	case StatusActive, StatusOverdue, StatusExpired:
		return true
	}
	return false
}

// Customer representa un cliente de la cartera.
// El ID se genera al crear y es inmutable. Date es la fecha de referencia
// del contrato en formato YYYY-MM-DD; se conserva como texto, igual que en
// el blob persistido.
type Customer struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Phone  string          `json:"phone"`
	Email  string          `json:"email"`
	Value  decimal.Decimal `json:"value"`
	Date   string          `json:"date"`
	Status CustomerStatus  `json:"status"`
	Notes  string          `json:"notes"`
}
