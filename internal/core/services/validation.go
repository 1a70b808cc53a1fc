package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"hrms-lite/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

// dateRule validates a calendar date in domain.DateLayout
const dateRule = "datetime=" + domain.DateLayout

var validate = newValidator()

// newValidator reports fields by their json names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps a json field name onto the detail returned for it
type fieldMessages map[string]string

var employeeMessages = fieldMessages{
	"employee_id":     "Employee ID must be 1-50 characters",
	"full_name":       "Full name must be 1-200 characters",
	"email":           "Enter a valid email address",
	"department":      "Department must be 1-100 characters",
	"date_of_joining": "Date of joining must be a valid YYYY-MM-DD date",
}

var attendanceMessages = fieldMessages{
	"employee_id": "Employee is required",
	"date":        "Date must be a valid YYYY-MM-DD date",
	"status":      domain.ErrInvalidStatus.Error(),
}

// validateInput checks input's validate tags. The first failing field, in
// declaration order, becomes a domain.FieldError.
func validateInput(input any, messages fieldMessages) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) || len(failures) == 0 {
		return err
	}
	return fieldError(failures[0], messages)
}

// validateDate checks an optional date value such as a query parameter
func validateDate(field, value string, messages fieldMessages) error {
	if value == "" {
		return nil
	}
	err := validate.Var(value, dateRule)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) || len(failures) == 0 {
		return err
	}
	return &domain.FieldError{Field: field, Message: messages[field]}
}

func fieldError(fe validator.FieldError, messages fieldMessages) *domain.FieldError {
	msg, ok := messages[fe.Field()]
	if !ok {
		msg = fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag())
	}
	return &domain.FieldError{Field: fe.Field(), Message: msg}
}
