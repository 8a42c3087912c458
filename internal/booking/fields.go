package booking

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ServiceOptions are the choices offered by the booking form's service select.
var ServiceOptions = []string{
	"General Dentistry",
	"Cosmetic Procedures",
	"Orthodontics",
	"Root Canal",
	"Dental Implants",
}

// Fields is one booking request as entered in the modal form.
type Fields struct {
	Name    string `form:"name" validate:"required"`
	Phone   string `form:"phone" validate:"required"`
	Service string `form:"service" validate:"required,booking_service"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	_ = v.RegisterValidation("booking_service", func(fl validator.FieldLevel) bool {
		return IsServiceOption(fl.Field().String())
	})
	return v
}

// IsServiceOption reports whether s is one of ServiceOptions.
func IsServiceOption(s string) bool {
	for _, opt := range ServiceOptions {
		if opt == s {
			return true
		}
	}
	return false
}

// Normalize trims surrounding whitespace from every field.
func (f Fields) Normalize() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Service: strings.TrimSpace(f.Service),
	}
}

// IsZero reports whether the form is blank.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

// Validate checks the required fields and the service choice.
func (f Fields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, fe.Field())
	}
	return out
}
