// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"advisor/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("risk_tolerance", validateRiskTolerance)
	}
}

func validateRiskTolerance(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, label := range models.RiskTolerances {
		if value == string(label) {
			return true
		}
	}
	return false
}
