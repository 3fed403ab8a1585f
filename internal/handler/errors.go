package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/cyclebees/estimates-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// codeRequestLocked tells the admin UI to stop offering item edits.
const codeRequestLocked = "REQUEST_LOCKED"

var validationErrors = []error{
	service.ErrInvalidStatus,
	service.ErrForceConfirmMismatch,
	service.ErrInvalidOrderCode,
	service.ErrOrderCodeRequired,
	service.ErrInvalidBikeName,
	service.ErrInvalidCustomerName,
	service.ErrInvalidPhone,
	service.ErrInvalidSection,
	service.ErrInvalidLabel,
	service.ErrInvalidPrice,
	service.ErrInvalidInitialStatus,
	service.ErrInvalidTargetStatus,
	service.ErrNothingToUpdate,
}

var conflictErrors = []error{
	service.ErrInvalidTransition,
	service.ErrStatusConflict,
	service.ErrRequestCancelled,
	service.ErrDeleteLocked,
	service.ErrOrderCodeTaken,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isConflictError(err error) bool {
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeServiceError maps a service error to its HTTP response. Anything
// unrecognised is logged under op and reported as a 500.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "request not found"})
	case errors.Is(err, service.ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
	case errors.Is(err, service.ErrRequestLocked):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "request has been viewed by the customer and can no longer be edited",
			"code":  codeRequestLocked,
		})
	case isConflictError(err):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Printf("ERROR: %s: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// parseUUIDParam reads a UUID path parameter, writing a 400 when it is
// malformed.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + label})
		return uuid.Nil, false
	}
	return id, true
}

func writeInternalError(w http.ResponseWriter, op string, err error) {
	log.Printf("ERROR: %s: %v", op, err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func writeNotFoundOrInternal(w http.ResponseWriter, op, notFound string, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": notFound})
		return
	}
	writeInternalError(w, op, err)
}
