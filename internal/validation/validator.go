package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("period_type", validatePeriodType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that transaction type is income or expense.
// Types are matched exactly, no case folding.
func validateTransactionType(fl validator.FieldLevel) bool {
	txType := fl.Field().String()
	return txType == "income" || txType == "expense"
}

// validatePositiveAmount validates that an amount is greater than 0. Amounts
// arrive as decimal strings on the wire, so string fields are parsed here.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		s := strings.TrimSpace(fl.Field().String())
		if s == "" || strings.HasPrefix(s, "-") || strings.TrimLeft(s, "0.") == "" {
			return false
		}
		for _, r := range s {
			if (r < '0' || r > '9') && r != '.' {
				return false
			}
		}
		return strings.Count(s, ".") <= 1
	default:
		return false
	}
}

// validatePeriodType validates that a reporting period is week, month or year.
// Empty is allowed so the field can stay optional.
func validatePeriodType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "week", "month", "year":
		return true
	default:
		return false
	}
}
