// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

// maxDimensionMeters is the sanity ceiling for a single window dimension.
const maxDimensionMeters = 50.0

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator with the domain rules registered.
func New() *Validator {
	v := validator.New()

	// dimension: a positive, finite measurement in meters.
	_ = v.RegisterValidation("dimension", func(fl validator.FieldLevel) bool {
		value := fl.Field().Float()
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
		return value > 0 && value <= maxDimensionMeters
	})

	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// FirstViolation converts a validation error into a message naming the first
// offending field. Validation stops at the first failure: the caller gets one
// actionable message, not a dump of every problem.
func FirstViolation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request payload"
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "Category":
		return "category must be one of curtain, roller-blind or panel-track"
	case "Finish":
		return "finish must be standard or premium"
	case "Width":
		return "width must be a positive number of meters"
	case "Height":
		return "height must be a positive number of meters"
	case "RailOrTrack":
		return "railOrTrack must be one of none, rail, track or motorized"
	case "Email":
		return "customer email must be a valid email address"
	case "Customer":
		return "customer details are required"
	default:
		return "invalid value for field " + fe.Field()
	}
}
