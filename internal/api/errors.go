package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/echolearn/echo-api/internal/domain"
	"github.com/echolearn/echo-api/internal/service/auth"
	"github.com/echolearn/echo-api/internal/service/review"
	"github.com/echolearn/echo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	// Ownership failures are reported as unauthorized rather than
	// forbidden so the response does not confirm the resource exists.
	case errors.Is(err, review.ErrSentenceNotOwned):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, review.ErrSentenceNotFound),
		errors.Is(err, review.ErrWordNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Soft-deleted content is gone until restored
	case errors.Is(err, review.ErrSentenceInTrash):
		return http.StatusGone

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, review.ErrSentenceNotOwned):
		return "You do not have access to this sentence"

	case errors.Is(err, review.ErrSentenceNotFound),
		errors.Is(err, store.ErrSentenceNotFound):
		return "Sentence not found"

	case errors.Is(err, review.ErrWordNotFound),
		errors.Is(err, store.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, review.ErrSentenceInTrash):
		return "Sentence is in trash"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'DictationRequest.Text' Error:Field validation
	// for 'Text' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "value too small"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
