// Package validation valida los DTOs de entrada y traduce las violaciones a
// mensajes por campo en pt-BR, listos para mostrarse junto al formulario.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors error de validación con un mensaje por campo.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	var b strings.Builder
	for field, msg := range e.Fields {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(msg)
	}
	return b.String()
}

// Validator envuelve go-playground/validator con los mensajes del producto.
type Validator struct {
	validate *validator.Validate
}

// New construye el validador usando los nombres de campo del JSON.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct valida el DTO; si hay violaciones devuelve *FieldErrors.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return &FieldErrors{Fields: fields}
}

// messageFor traduce cada violación al mensaje que muestra el formulario.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "O nome é obrigatório"
	case "phone":
		return "O telefone é obrigatório"
	case "value":
		return "Insira um valor válido"
	}
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "E-mail inválido"
	case "url":
		return "URL inválida"
	case "datetime":
		return "Data inválida (use AAAA-MM-DD)"
	case "oneof":
		return "Valor fora das opções permitidas"
	case "max":
		return "Texto longo demais"
	default:
		return "Valor inválido"
	}
}
