// Package httputil holds the JSON, validation and error plumbing shared by the API handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

type errorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, errorResponse{Error: message, Code: code})
}

// Decode reads a JSON body into v and runs its validate tags. On failure it
// writes a 400 response and returns false.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return false
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			WriteError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return false
		}

		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}

		WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: details,
		})

		return false
	}

	return true
}

// ParseUUID reads a UUID path parameter, writing a 400 response if it is malformed.
func ParseUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)

	id, err := uuid.Parse(raw)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid UUID: "+raw)
		return uuid.Nil, false
	}

	return id, true
}

// QueryUUID reads an optional UUID query parameter.
func QueryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return &id, nil
}

// QueryDate reads a YYYY-MM-DD query parameter, falling back to def when absent.
func QueryDate(r *http.Request, key string, def time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}

	return t, nil
}

// WriteServiceError maps a domain error onto an HTTP status and error code.
func WriteServiceError(w http.ResponseWriter, err error) {
	var verr *billing.ValidationError

	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:   err.Error(),
			Code:    "VALIDATION_ERROR",
			Details: map[string]string{verr.Field: verr.Message},
		})
	case errors.Is(err, ownership.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, billing.ErrNotFound), errors.Is(err, ownership.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, billing.ErrLeaseTerminated):
		WriteError(w, http.StatusConflict, "LEASE_TERMINATED", err.Error())
	case errors.Is(err, billing.ErrShopOccupied):
		WriteError(w, http.StatusConflict, "SHOP_OCCUPIED", err.Error())
	case errors.Is(err, ownership.ErrNoOwners):
		WriteError(w, http.StatusConflict, "NO_OWNERS", err.Error())
	case errors.Is(err, billing.ErrInconsistent):
		slog.Error("ledger inconsistency", "error", err)
		WriteError(w, http.StatusInternalServerError, "LEDGER_INCONSISTENT", err.Error())
	default:
		slog.Error("internal error", "error", err)
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
