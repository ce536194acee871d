package billing

import (
	"net/http"

	"github.com/MrJamesThe3rd/rentroll/internal/http/httputil"
)

type createTenantRequest struct {
	Name              string `json:"name" validate:"required"`
	OpeningDueBalance int64  `json:"opening_due_balance"`
}

func (h *Handler) createTenant(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	tenant, err := h.svc.CreateTenant(r.Context(), req.Name, req.OpeningDueBalance)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toTenantResponse(tenant))
}

func (h *Handler) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.svc.ListTenants(r.Context())
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	resp := make([]tenantResponse, len(tenants))
	for i, t := range tenants {
		resp[i] = toTenantResponse(t)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) getTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	tenant, err := h.svc.GetTenant(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toTenantResponse(tenant))
}

func (h *Handler) tenantBalances(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	balances, err := h.svc.TenantBalances(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toTenantBalanceResponse(balances))
}

func (h *Handler) tenantLedger(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	ledger, err := h.svc.BuildTenantLedger(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toLedgerResponse(ledger))
}
