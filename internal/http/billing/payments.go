package billing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	"github.com/MrJamesThe3rd/rentroll/internal/http/httputil"
)

type recordPaymentRequest struct {
	LeaseID     uuid.UUID       `json:"lease_id" validate:"required"`
	Amount      int64           `json:"amount" validate:"gt=0"`
	PaymentDate time.Time       `json:"payment_date" validate:"required"`
	RentMonths  []billing.Month `json:"rent_months,omitempty"`
	Note        string          `json:"note"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	payment, err := h.svc.RecordPayment(r.Context(), billing.PaymentParams{
		LeaseID:     req.LeaseID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		RentMonths:  req.RentMonths,
		Note:        req.Note,
	})
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	var (
		filter billing.PaymentFilter
		err    error
	)

	if filter.TenantID, err = httputil.QueryUUID(r, "tenant_id"); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	if filter.LeaseID, err = httputil.QueryUUID(r, "lease_id"); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	if s := r.URL.Query().Get("include_deleted"); s != "" {
		if filter.IncludeDeleted, err = strconv.ParseBool(s); err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", "include_deleted: "+err.Error())
			return
		}
	}

	payments, err := h.svc.ListPayments(r.Context(), filter)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toPaymentResponse(p)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	payment, err := h.svc.GetPayment(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPaymentResponse(payment))
}

type deletePaymentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// deletePayment soft-deletes; the payment stays visible with include_deleted=true.
func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	var req deletePaymentRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	if err := h.svc.SoftDeletePayment(r.Context(), id, req.Reason); err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
