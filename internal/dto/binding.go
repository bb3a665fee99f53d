package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// RegisterCustomValidations wires the `currency` binding tag into gin's
// validator so request DTOs reject codes outside the supported set before
// they reach a service.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return domain.IsSupportedCurrency(fl.Field().String())
	})
}
