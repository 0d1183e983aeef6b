package validation

import (
	"reflect"
	"strings"

	"wisewallet/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with the domain's custom
// rules and json-tag field naming.
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
	_ = v.RegisterValidation("day_of_month", validateDayOfMonth)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("recommendation_type", validateRecommendationType)

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

// validateTransactionType checks the type is one of the two ledger
// directions.
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validateDayOfMonth checks a recurring due day exists in every month.
func validateDayOfMonth(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= models.MinDayOfMonth && day <= models.MaxDayOfMonth
}

// validatePositiveAmount validates that an amount is greater than 0.
// Amounts travel as decimal strings on the wire, so string fields are
// parsed before comparing.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		return parsePositiveDecimal(fl.Field().String())
	default:
		return false
	}
}

func parsePositiveDecimal(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && d.GreaterThan(decimal.Zero)
}

// validateRecommendationType checks a recommendation severity label.
func validateRecommendationType(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case models.RecommendationWarning, models.RecommendationSuccess, models.RecommendationTip:
		return true
	default:
		return false
	}
}
