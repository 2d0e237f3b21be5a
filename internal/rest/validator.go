package rest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fieldMessages = map[string]string{
	"title":    "The title must be between 2 and 100 characters.",
	"category": "Please enter a category.",
	"author":   "Please enter the name of the author.",
	"content":  "The content of the article cannot be empty.",
}

// FormValidator is the echo.Validator for submitted forms.
type FormValidator struct {
	validator *validator.Validate
}

func NewFormValidator() *FormValidator {
	validate := validator.New()

	// Use form field names in validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FormValidator{validator: validate}
}

func (v *FormValidator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	return NewFormErrors(verrs)
}

func NewFormErrors(errs validator.ValidationErrors) FormErrors {
	result := make(FormErrors, len(errs))
	for _, err := range errs {
		field := err.Field()
		if msg, ok := fieldMessages[field]; ok {
			result[field] = msg
			continue
		}

		switch err.Tag() {
		case "required":
			result[field] = fmt.Sprintf("%s is required", field)
		case "min":
			result[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			result[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		default:
			result[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return result
}

func (e FormErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field, msg := range e {
		fields = append(fields, field+": "+msg)
	}

	return "validation failed: " + strings.Join(fields, ", ")
}
