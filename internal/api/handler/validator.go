package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level validation failure, rendered inside the
// {"errors": [...]} envelope.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ValidationError aggregates all field failures for one request.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Msg)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Failures come back as a
// *ValidationError carrying one entry per offending field.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := &ValidationError{Errors: make([]FieldError, 0, len(ve))}
			for _, fe := range ve {
				out.Errors = append(out.Errors, fieldError(fe))
			}
			return out
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) FieldError {
	field := strings.ToLower(fe.Field())
	msg := ""
	switch fe.Tag() {
	case "required":
		msg = field + " is required"
	case "email":
		msg = "please enter a valid email address"
	case "min":
		msg = fmt.Sprintf("%s should be at least %s characters", field, fe.Param())
	case "max":
		msg = fmt.Sprintf("%s should be at most %s characters", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
	return FieldError{Msg: msg, Param: field}
}
