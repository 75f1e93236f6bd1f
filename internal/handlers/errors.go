package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/organic_store_accounting/internal/apperrors"
)

// statusForError maps the application error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateReference):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnbalanced), errors.Is(err, apperrors.ErrAccountSetup):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides unexpected internal errors from clients.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
