package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/medrecords/patient-system/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// It surfaces the FIRST violated rule's message, matching the dashboard's
// contract of one message per failed submission.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	// Report JSON field names (firstName, phoneNumber, ...) instead of
	// Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// dob: ISO date, strictly before the current time.
	_ = v.RegisterValidation("dob", func(fl validator.FieldLevel) bool {
		return domain.ValidDOB(fl.Field().String(), time.Now())
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return errors.New(fieldError(ve[0]))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into the message the
// dashboard shows next to the offending field.
func fieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "firstName":
		if fe.Tag() == "max" {
			return "First name too long"
		}
		return "First name is required"
	case "lastName":
		if fe.Tag() == "max" {
			return "Last name too long"
		}
		return "Last name is required"
	case "email":
		return "Invalid email address"
	case "phoneNumber":
		if fe.Tag() == "max" {
			return "Phone number too long"
		}
		return "Phone number must be at least 10 digits"
	case "dob":
		return "Invalid date of birth"
	case "username":
		return "Username is required"
	case "password":
		return "Password is required"
	}
	return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
}
