package middleware

import (
	"time"

	"pontomais/internal/domain/plan"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the `period` and `yearmonth` binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("period", validatePeriod); err != nil {
		return err
	}
	return v.RegisterValidation("yearmonth", validateYearMonth)
}

func validatePeriod(fl validator.FieldLevel) bool {
	return plan.Period(fl.Field().String()).IsValid()
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())
	return err == nil
}
