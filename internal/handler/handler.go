package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"backoffice/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

var validate = newValidator()

// newValidator builds the shared request validator, reporting fields by
// their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// decodeJSON decodes and validates a request body into dest. Failures come
// back as domain errors so handlers map them uniformly.
func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens validator failures into one domain error.
func formatValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		parts := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			parts = append(parts, fmt.Sprintf("%s %s", fieldErr.Field(), validationMessage(fieldErr)))
		}
		return model.NewDomainError(model.ErrCodeValidation, strings.Join(parts, "; "))
	}
	return model.NewDomainError(model.ErrCodeValidation, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return "is invalid"
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a domain error to an HTTP status.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, http.StatusBadRequest, domainErr.Message, logger)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error", logger)
}
