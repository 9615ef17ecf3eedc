// Package validation holds form-level validators used by the admin and cart handlers.
package validation

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validator checks a raw form value and returns a message, or "" when valid.
type Validator func(v string) string

// Required rejects blank values and values longer than maxLen runes.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Optional accepts blank values and rejects values longer than maxLen runes.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// IntRange requires an integer between minVal and maxVal. Blank values pass; pair with Required when needed.
func IntRange(fieldName string, minVal, maxVal int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fieldName + " must be a whole number."
		}
		if i < minVal || i > maxVal {
			return fmt.Sprintf("%s must be between %d and %d.", fieldName, minVal, maxVal)
		}
		return ""
	}
}

// NonNegative requires a decimal number >= 0. Blank values pass.
func NonNegative(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fieldName + " must be a number."
		}
		if f < 0 {
			return fieldName + " must be 0 or more."
		}
		return ""
	}
}

// Email requires a well-formed address. Blank values pass.
func Email(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if _, err := mail.ParseAddress(v); err != nil {
			return "Enter a valid " + strings.ToLower(fieldName) + "."
		}
		return ""
	}
}

// UUID requires a canonical UUID. Blank values pass.
func UUID(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if _, err := uuid.Parse(v); err != nil || len(v) != 36 {
			return fieldName + " is not a valid selection."
		}
		return ""
	}
}

// OneOf matches v case-insensitively against options.
func OneOf(fieldName string, options []string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		for _, opt := range options {
			if strings.EqualFold(v, opt) {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(options, ", "))
	}
}

// DateOrder requires start <= end when both are set (YYYY-MM-DD).
func DateOrder(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return ""
	}
	if start > end {
		return "Available start date must not be after the end date."
	}
	return ""
}

// FieldValidator accumulates the first error found for each field.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate runs validators against value, stopping at the first failure for field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	if _, seen := fv.errors[field]; seen {
		return fv
	}
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = msg
			break
		}
	}
	return fv
}

// Add records msg for field unless msg is empty or field already failed.
func (fv *FieldValidator) Add(field, msg string) *FieldValidator {
	if msg == "" {
		return fv
	}
	if _, seen := fv.errors[field]; !seen {
		fv.errors[field] = msg
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}
