package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Let numeric tags (gte, gt) work on decimal amounts.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate checks the struct tags of a domain value and wraps failures in apperrors.ErrValidation.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		names := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			names = append(names, fe.Field())
		}
		return fmt.Errorf("%w: missing or invalid fields: %s", apperrors.ErrValidation, strings.Join(names, ", "))
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

// ValidatePeriod checks a YYYY-MM period key.
func ValidatePeriod(period string) error {
	if strings.TrimSpace(period) == "" {
		return apperrors.ErrPeriodRequired
	}
	if err := validate.Var(period, "datetime="+PeriodLayout); err != nil {
		return fmt.Errorf("%w: period %q must be formatted YYYY-MM", apperrors.ErrValidation, period)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if err := validate.Var(date, "required,datetime="+DateLayout); err != nil {
		return fmt.Errorf("%w: date %q must be formatted YYYY-MM-DD", apperrors.ErrValidation, date)
	}
	return nil
}
