package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"sorveteria-backend/services"
)

// ValidationDetails converts a gin binding error into per-field violations
// without leaking internal Go struct names. Non-validator errors (malformed
// JSON, wrong types) collapse into a single body-level violation.
func ValidationDetails(err error) []services.FieldError {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []services.FieldError{{Field: "body", Message: "Corpo da requisição inválido"}}
	}

	details := make([]services.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, services.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "é obrigatório"
	case "email":
		return "deve ser um e-mail válido"
	case "url":
		return "deve ser uma URL válida"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("deve ter no mínimo %s caracteres", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("deve ter no mínimo %s itens", fe.Param())
		default:
			return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("deve ter no máximo %s itens", fe.Param())
		default:
			return fmt.Sprintf("deve ser no máximo %s", fe.Param())
		}
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", fe.Param())
	case "datetime":
		if fe.Param() == "15:04" {
			return "deve estar no formato HH:MM"
		}
		return "deve estar no formato YYYY-MM-DD"
	default:
		return "é inválido"
	}
}
