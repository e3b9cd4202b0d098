package handlers

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/support-chat-service/pkg/util/errorutil"
)

var validate = validator.New()

// validateStruct runs struct tag validation and converts failures into a
// field-keyed validation error.
func validateStruct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	details := make(map[string]interface{}, len(fieldErrors))
	for _, fe := range fieldErrors {
		details[fe.Field()] = fe.Tag()
	}
	return apperrors.NewValidationError("validation failed", details)
}
