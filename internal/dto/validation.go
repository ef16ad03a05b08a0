package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// positiveDecimal validates that a decimal.Decimal field is strictly positive.
// The stock "gt=0" tag cannot inspect decimal's internal representation.
func positiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}

// nonNegativeDecimal validates that a decimal.Decimal field is zero or more.
func nonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("positivedecimal", positiveDecimal)
		_ = v.RegisterValidation("nonnegativedecimal", nonNegativeDecimal)
	}
}
