package ownership

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/http/httputil"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=ownership

type Service interface {
	CreateOwner(ctx context.Context, params ownership.CreateOwnerParams) (*ownership.Owner, error)
	GetOwner(ctx context.Context, id uuid.UUID) (*ownership.Owner, error)
	ListOwners(ctx context.Context) ([]*ownership.Owner, error)
	OwnerReport(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*ownership.OwnerReport, error)
	RecordBankDeposit(ctx context.Context, params ownership.BankDepositParams) (*ownership.BankDeposit, error)
	ListBankDeposits(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*ownership.BankDeposit, error)

	CreateShop(ctx context.Context, params ownership.CreateShopParams) (*ownership.Shop, error)
	GetShop(ctx context.Context, id uuid.UUID) (*ownership.Shop, error)
	ListShops(ctx context.Context) ([]*ownership.Shop, error)
	Share(ctx context.Context, shopID uuid.UUID, amount int64) (int64, error)

	CreateExpense(ctx context.Context, params ownership.CreateExpenseParams) (*ownership.Expense, error)
	ListExpenses(ctx context.Context, from, to time.Time) ([]*ownership.Expense, error)
}

type Handler struct {
	svc Service
	now func() time.Time
}

func NewHandler(svc Service, now func() time.Time) *Handler {
	return &Handler{svc: svc, now: now}
}

func (h *Handler) OwnerRoutes(r chi.Router) {
	r.Get("/", h.listOwners)
	r.Get("/{id}", h.getOwner)
	r.Get("/{id}/report", h.report)
	r.Get("/{id}/bank-deposits", h.listBankDeposits)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.createOwner)
		r.Post("/{id}/bank-deposits", h.recordBankDeposit)
	})
}

func (h *Handler) ShopRoutes(r chi.Router) {
	r.With(middleware.AllowContentType("application/json")).Post("/", h.createShop)
	r.Get("/", h.listShops)
	r.Get("/{id}", h.getShop)
	r.Get("/{id}/share", h.share)
}

func (h *Handler) ExpenseRoutes(r chi.Router) {
	r.With(middleware.AllowContentType("application/json")).Post("/", h.createExpense)
	r.Get("/", h.listExpenses)
}

type createOwnerRequest struct {
	Name          string `json:"name" validate:"required"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

func (h *Handler) createOwner(w http.ResponseWriter, r *http.Request) {
	var req createOwnerRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	owner, err := h.svc.CreateOwner(r.Context(), ownership.CreateOwnerParams{
		Name:          req.Name,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toOwnerResponse(owner))
}

func (h *Handler) listOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.svc.ListOwners(r.Context())
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	resp := make([]ownerResponse, len(owners))
	for i, o := range owners {
		resp[i] = toOwnerResponse(o)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) getOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	owner, err := h.svc.GetOwner(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toOwnerResponse(owner))
}

// dateRange reads from/to query parameters. A missing range covers the
// current month up to today.
func (h *Handler) dateRange(w http.ResponseWriter, r *http.Request) (from, to time.Time, ok bool) {
	today := h.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	from, err := httputil.QueryDate(r, "from", today.AddDate(0, 0, 1-today.Day()))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return from, to, false
	}

	to, err = httputil.QueryDate(r, "to", today)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return from, to, false
	}

	return from, to, true
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	report, err := h.svc.OwnerReport(r.Context(), id, from, to)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toReportResponse(report))
}

type bankDepositRequest struct {
	Amount    int64     `json:"amount" validate:"gt=0"`
	Date      time.Time `json:"date" validate:"required"`
	Reference string    `json:"reference"`
}

func (h *Handler) recordBankDeposit(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	var req bankDepositRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	deposit, err := h.svc.RecordBankDeposit(r.Context(), ownership.BankDepositParams{
		OwnerID:   id,
		Amount:    req.Amount,
		Date:      req.Date,
		Reference: req.Reference,
	})
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toBankDepositResponse(deposit))
}

func (h *Handler) listBankDeposits(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	deposits, err := h.svc.ListBankDeposits(r.Context(), id, from, to)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	resp := make([]bankDepositResponse, len(deposits))
	for i, d := range deposits {
		resp[i] = toBankDepositResponse(d)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

type createShopRequest struct {
	Number        string         `json:"number" validate:"required"`
	OwnershipType ownership.Type `json:"ownership_type" validate:"required,oneof=sole common"`
	OwnerID       *uuid.UUID     `json:"owner_id,omitempty" validate:"required_if=OwnershipType sole"`
}

func (h *Handler) createShop(w http.ResponseWriter, r *http.Request) {
	var req createShopRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	shop, err := h.svc.CreateShop(r.Context(), ownership.CreateShopParams{
		Number:        req.Number,
		OwnershipType: req.OwnershipType,
		OwnerID:       req.OwnerID,
	})
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toShopResponse(shop))
}

func (h *Handler) listShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.svc.ListShops(r.Context())
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	resp := make([]shopResponse, len(shops))
	for i, s := range shops {
		resp[i] = toShopResponse(s)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) getShop(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	shop, err := h.svc.GetShop(r.Context(), id)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toShopResponse(shop))
}

// share answers GET /shops/{id}/share?amount=1500.00 with one owner's part in cents.
func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, r, "id")
	if !ok {
		return
	}

	amount, err := money.Parse(r.URL.Query().Get("amount"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	share, err := h.svc.Share(r.Context(), id, amount)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, shareResponse{ShopID: id, Amount: amount, Share: share})
}

type createExpenseRequest struct {
	Allocation  ownership.Allocation `json:"allocation" validate:"required,oneof=owner common"`
	OwnerID     *uuid.UUID           `json:"owner_id,omitempty" validate:"required_if=Allocation owner"`
	Category    string               `json:"category" validate:"required"`
	Description string               `json:"description"`
	Amount      int64                `json:"amount" validate:"gt=0"`
	Date        time.Time            `json:"date" validate:"required"`
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	expense, err := h.svc.CreateExpense(r.Context(), ownership.CreateExpenseParams{
		Allocation:  req.Allocation,
		OwnerID:     req.OwnerID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	expenses, err := h.svc.ListExpenses(r.Context(), from, to)
	if err != nil {
		httputil.WriteServiceError(w, err)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toExpenseResponse(e)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}
