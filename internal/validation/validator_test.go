package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/validation"
)

func TestStruct_RequestValidoPasa(t *testing.T) {
	v := validation.New()

	err := v.Struct(dto.CustomerRequest{
		Name:   "Ana Silva",
		Phone:  "11999990000",
		Email:  "ana@example.com",
		Value:  decimal.NewFromInt(100),
		Date:   "2024-01-01",
		Status: "Active",
	})
	assert.NoError(t, err)
}

func TestStruct_CamposObligatoriosEnPortugues(t *testing.T) {
	v := validation.New()

	err := v.Struct(dto.CustomerRequest{})
	require.Error(t, err)

	var ferrs *validation.FieldErrors
	require.ErrorAs(t, err, &ferrs)
	assert.Equal(t, "O nome é obrigatório", ferrs.Fields["name"])
	assert.Equal(t, "O telefone é obrigatório", ferrs.Fields["phone"])
}

func TestStruct_EmailInvalido(t *testing.T) {
	v := validation.New()

	err := v.Struct(dto.CustomerRequest{Name: "Ana", Phone: "11", Email: "no-es-email"})
	require.Error(t, err)

	var ferrs *validation.FieldErrors
	require.ErrorAs(t, err, &ferrs)
	assert.Equal(t, "E-mail inválido", ferrs.Fields["email"])
}

func TestStruct_FechaYEstadoInvalidos(t *testing.T) {
	v := validation.New()

	err := v.Struct(dto.CustomerRequest{Name: "Ana", Phone: "11", Date: "01/01/2024", Status: "Pendiente"})
	require.Error(t, err)

	var ferrs *validation.FieldErrors
	require.ErrorAs(t, err, &ferrs)
	assert.Equal(t, "Data inválida (use AAAA-MM-DD)", ferrs.Fields["date"])
	assert.Equal(t, "Valor fora das opções permitidas", ferrs.Fields["status"])
}

func TestStruct_SettingsURLInvalida(t *testing.T) {
	v := validation.New()

	err := v.Struct(dto.SettingsRequest{WebhookURL: "no-es-url", CompanyName: "Nexus"})
	require.Error(t, err)

	var ferrs *validation.FieldErrors
	require.ErrorAs(t, err, &ferrs)
	assert.Equal(t, "URL inválida", ferrs.Fields["webhookUrl"])
}
