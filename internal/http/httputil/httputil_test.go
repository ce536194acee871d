package httputil_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	"github.com/MrJamesThe3rd/rentroll/internal/http/httputil"
	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
)

type body struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) body {
	t.Helper()

	var b body
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&b))

	return b
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &billing.ValidationError{Field: "amount", Message: "must be positive"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"wrapped validation", fmt.Errorf("record payment: %w", &billing.ValidationError{Field: "amount", Message: "x"}), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"ownership input", fmt.Errorf("%w: amount", ownership.ErrInvalidInput), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"billing not found", fmt.Errorf("get lease: %w", billing.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"ownership not found", ownership.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"terminated", billing.ErrLeaseTerminated, http.StatusConflict, "LEASE_TERMINATED"},
		{"occupied", billing.ErrShopOccupied, http.StatusConflict, "SHOP_OCCUPIED"},
		{"no owners", ownership.ErrNoOwners, http.StatusConflict, "NO_OWNERS"},
		{"inconsistent", billing.ErrInconsistent, http.StatusInternalServerError, "LEDGER_INCONSISTENT"},
		{"other", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			httputil.WriteServiceError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeBody(t, rec).Code)
		})
	}
}

func TestWriteServiceError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	httputil.WriteServiceError(rec, &billing.ValidationError{Field: "transfer_amount", Message: "must be positive"})

	b := decodeBody(t, rec)
	assert.Equal(t, map[string]string{"transfer_amount": "must be positive"}, b.Details)
}

func TestWriteServiceError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	httputil.WriteServiceError(rec, errors.New("pq: password authentication failed"))

	assert.Equal(t, "internal server error", decodeBody(t, rec).Error)
}

type createRequest struct {
	Name   string `json:"name" validate:"required"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantOK      bool
		wantCode    string
		wantDetails map[string]string
	}{
		{name: "valid", payload: `{"name":"Shop 4","amount":1500}`, wantOK: true},
		{name: "malformed", payload: `{"name":`, wantCode: "INVALID_BODY"},
		{
			name:        "failed tags use json names",
			payload:     `{"amount":0}`,
			wantCode:    "VALIDATION_ERROR",
			wantDetails: map[string]string{"name": "required", "amount": "gt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()

			var v createRequest
			ok := httputil.Decode(rec, req, &v)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, createRequest{Name: "Shop 4", Amount: 1500}, v)
				return
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			b := decodeBody(t, rec)
			assert.Equal(t, tt.wantCode, b.Code)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, b.Details)
			}
		})
	}
}

func TestParseUUID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := httputil.ParseUUID(w, r, "id")
		if !ok {
			return
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]string{"id": id.String()})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeBody(t, rec).Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/6f1c2b9e-8a41-4a57-9f1e-3d2b5c7a9e10", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQueryHelpers(t *testing.T) {
	def := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	req := httptest.NewRequest(http.MethodGet, "/?from=2024-01-15&lease_id=bad", nil)

	from, err := httputil.QueryDate(req, "from", def)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), from)

	to, err := httputil.QueryDate(req, "to", def)
	require.NoError(t, err)
	assert.Equal(t, def, to)

	_, err = httputil.QueryUUID(req, "lease_id")
	assert.Error(t, err)

	id, err := httputil.QueryUUID(req, "tenant_id")
	require.NoError(t, err)
	assert.Nil(t, id)
}
