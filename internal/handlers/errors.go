package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"serverless-router/pkg/lambda"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
	RequestID        string            `json:"request_id,omitempty"`
}

// ValidationError represents a validation error with field details
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// newValidator returns a validator reporting fields by their json name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// badRequest turns a validation failure into a 400 response. Any other
// error is returned as is so the router's error handler sees it.
func badRequest(req *lambda.Request, err error) (*lambda.Response, error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	return lambda.JSON(http.StatusBadRequest, ErrorResponse{
		Error:            "Validation failed",
		Message:          "Request validation failed",
		ValidationErrors: formatValidationErrors(validationErrors),
		RequestID:        req.RequestID,
	})
}

func formatValidationErrors(validationErrors validator.ValidationErrors) []ValidationError {
	var out []ValidationError

	for _, err := range validationErrors {
		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "alpha":
			message = fmt.Sprintf("%s must contain letters only", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("%s is invalid", err.Field())
		}

		out = append(out, ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: message,
		})
	}

	return out
}
