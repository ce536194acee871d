package billing

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	"github.com/MrJamesThe3rd/rentroll/internal/http/httputil"
)

type createLeaseRequest struct {
	TenantID          uuid.UUID `json:"tenant_id" validate:"required"`
	ShopID            uuid.UUID `json:"shop_id" validate:"required"`
	MonthlyRent       int64     `json:"monthly_rent" validate:"gt=0"`
	SecurityDeposit   int64     `json:"security_deposit" validate:"gte=0"`
	OpeningDueBalance int64     `json:"opening_due_balance"`
	StartDate         time.Time `json:"start_date" validate:"required"`
	EndDate           time.Time `json:"end_date"`
}

func (h *Handler) createLease(w http.ResponseWriter, r *http.Request) {
	var req createLeaseRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	lease, err := h.svc.CreateLease(r.Context(), billing.CreateLeaseParams{
		TenantID:          req.TenantID,
		ShopID:            req.ShopID,
		MonthlyRent:       req.MonthlyRent,
		SecurityDeposit:   req.SecurityDeposit,
		OpeningDueBalance: req.OpeningDueBalance,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
	})
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toLeaseResponse(lease))
}

func (h *Handler) listLeases(w http.ResponseWriter, r *http.Request) {
	var (
		filter billing.LeaseFilter
		err    error
	)

	if filter.TenantID, err = httputil.QueryUUID(r, "tenant_id"); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	if filter.ShopID, err = httputil.QueryUUID(r, "shop_id"); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := billing.LeaseStatus(s)
		if !status.Valid() {
			httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", "unknown lease status: "+s)
			return
		}

		filter.Status = &status
	}

	leases, err := h.svc.ListLeases(r.Context(), filter)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toLeaseResponseList(leases))
}

func (h *Handler) getLease(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	lease, err := h.svc.GetLease(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toLeaseResponse(lease))
}

type updateLeaseRequest struct {
	MonthlyRent     *int64     `json:"monthly_rent,omitempty" validate:"omitempty,gt=0"`
	SecurityDeposit *int64     `json:"security_deposit,omitempty" validate:"omitempty,gte=0"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

func (h *Handler) updateLease(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateLeaseRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	lease, err := h.svc.UpdateLeaseTerms(r.Context(), id, billing.UpdateLeaseParams{
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toLeaseResponse(lease))
}

type adjustRentRequest struct {
	NewRent       int64     `json:"new_rent" validate:"gt=0"`
	EffectiveDate time.Time `json:"effective_date" validate:"required"`
}

func (h *Handler) adjustRent(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	var req adjustRentRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	adj, err := h.svc.AdjustRent(r.Context(), id, req.NewRent, req.EffectiveDate)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toAdjustmentResponse(adj))
}

func (h *Handler) listAdjustments(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	adjs, err := h.svc.ListAdjustments(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	resp := make([]adjustmentResponse, len(adjs))
	for i, a := range adjs {
		resp[i] = toAdjustmentResponse(a)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	invoices, err := h.svc.ListInvoices(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toInvoiceResponse(inv)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) regenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RegenerateInvoices(r.Context(), id); err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// rentForMonth answers GET /leases/{id}/rent?month=YYYY-MM.
func (h *Handler) rentForMonth(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	month, err := billing.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	rent, err := h.svc.ResolveRentForMonth(r.Context(), id, month.Year, month.Month)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, rentResponse{LeaseID: id, Month: month, Rent: rent})
}

func (h *Handler) leaseBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	balance, err := h.svc.LeaseBalance(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toBalanceResponse(balance))
}

func (h *Handler) leaseLedger(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	ledger, err := h.svc.BuildLeaseLedger(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toLedgerResponse(ledger))
}

type settlementRequest struct {
	UseSecurityDeposit bool       `json:"use_security_deposit"`
	TransferAmount     *int64     `json:"transfer_amount,omitempty"`
	EffectiveDate      *time.Time `json:"effective_date,omitempty"`
	Note               string     `json:"note"`
}

func (req settlementRequest) toDomain() billing.SettlementRequest {
	return billing.SettlementRequest{
		UseSecurityDeposit: req.UseSecurityDeposit,
		TransferAmount:     req.TransferAmount,
		EffectiveDate:      req.EffectiveDate,
		Note:               req.Note,
	}
}

func (h *Handler) previewSettlement(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	var req settlementRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	settlement, err := h.svc.ComputeSettlement(r.Context(), id, req.toDomain())
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toSettlementResponse(settlement))
}

func (h *Handler) terminate(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	var req settlementRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	settlement, err := h.svc.TerminateLease(r.Context(), id, req.toDomain())
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toSettlementResponse(settlement))
}
