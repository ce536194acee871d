package billing

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=billing

// Service is the part of the billing engine exposed over HTTP.
type Service interface {
	CreateTenant(ctx context.Context, name string, openingDue int64) (*billing.Tenant, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*billing.Tenant, error)
	ListTenants(ctx context.Context) ([]*billing.Tenant, error)
	TenantBalances(ctx context.Context, tenantID uuid.UUID) (*billing.TenantBalance, error)
	BuildTenantLedger(ctx context.Context, tenantID uuid.UUID) (*billing.Ledger, error)

	CreateLease(ctx context.Context, params billing.CreateLeaseParams) (*billing.Lease, error)
	GetLease(ctx context.Context, id uuid.UUID) (*billing.Lease, error)
	ListLeases(ctx context.Context, filter billing.LeaseFilter) ([]*billing.Lease, error)
	UpdateLeaseTerms(ctx context.Context, leaseID uuid.UUID, params billing.UpdateLeaseParams) (*billing.Lease, error)
	AdjustRent(ctx context.Context, leaseID uuid.UUID, newRent int64, effective time.Time) (*billing.RentAdjustment, error)
	ListAdjustments(ctx context.Context, leaseID uuid.UUID) ([]*billing.RentAdjustment, error)
	ListInvoices(ctx context.Context, leaseID uuid.UUID) ([]*billing.Invoice, error)
	RegenerateInvoices(ctx context.Context, leaseID uuid.UUID) error
	ResolveRentForMonth(ctx context.Context, leaseID uuid.UUID, year int, month time.Month) (int64, error)
	LeaseBalance(ctx context.Context, leaseID uuid.UUID) (billing.Balance, error)
	BuildLeaseLedger(ctx context.Context, leaseID uuid.UUID) (*billing.Ledger, error)
	ComputeSettlement(ctx context.Context, leaseID uuid.UUID, req billing.SettlementRequest) (*billing.Settlement, error)
	TerminateLease(ctx context.Context, leaseID uuid.UUID, req billing.SettlementRequest) (*billing.Settlement, error)

	RecordPayment(ctx context.Context, params billing.PaymentParams) (*billing.Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*billing.Payment, error)
	ListPayments(ctx context.Context, filter billing.PaymentFilter) ([]*billing.Payment, error)
	SoftDeletePayment(ctx context.Context, paymentID uuid.UUID, reason string) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) TenantRoutes(r chi.Router) {
	r.With(middleware.AllowContentType("application/json")).Post("/", h.createTenant)
	r.Get("/", h.listTenants)
	r.Get("/{id}", h.getTenant)
	r.Get("/{id}/balances", h.tenantBalances)
	r.Get("/{id}/ledger", h.tenantLedger)
}

func (h *Handler) LeaseRoutes(r chi.Router) {
	r.Get("/", h.listLeases)
	r.Get("/{id}", h.getLease)
	r.Get("/{id}/invoices", h.listInvoices)
	r.Get("/{id}/adjustments", h.listAdjustments)
	r.Get("/{id}/rent", h.rentForMonth)
	r.Get("/{id}/balance", h.leaseBalance)
	r.Get("/{id}/ledger", h.leaseLedger)
	r.Post("/{id}/invoices/regenerate", h.regenerate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.createLease)
		r.Patch("/{id}", h.updateLease)
		r.Post("/{id}/adjustments", h.adjustRent)
		r.Post("/{id}/settlement", h.previewSettlement)
		r.Post("/{id}/terminate", h.terminate)
	})
}

func (h *Handler) PaymentRoutes(r chi.Router) {
	r.With(middleware.AllowContentType("application/json")).Post("/", h.recordPayment)
	r.Get("/", h.listPayments)
	r.Get("/{id}", h.getPayment)
	r.Delete("/{id}", h.deletePayment)
}
