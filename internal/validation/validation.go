// Package validation validates user input of the word and question type services.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/langdrill/internal/language"
)

// Error reports the invalid fields of an input.
type Error struct {
	Subject string
	Fields  []FieldError
}

// FieldError describes why one field is invalid.
type FieldError struct {
	Field       string
	Description string
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, f.Field+" "+f.Description)
	}
	return fmt.Sprintf("invalid %s: %s", e.Subject, strings.Join(fields, ", "))
}

// Validator validates structs tagged with `validate`.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that knows the "language" tag.
func New() (*Validator, error) {
	validate := validator.New()
	if err := language.RegisterValidation(validate); err != nil {
		return nil, fmt.Errorf("language.RegisterValidation() > %w", err)
	}
	return &Validator{validate: validate}, nil
}

// Struct validates input and returns an *Error naming subject when it is invalid.
func (v *Validator) Struct(subject string, input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:       strings.ToLower(fe.Field()),
			Description: fmt.Sprintf("%q is not valid", fmt.Sprint(fe.Value())),
		})
	}
	return &Error{Subject: subject, Fields: fields}
}
