package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reader is the read side of the billing store. It is implemented both by the
// repository, for unlocked reads, and by Tx, for reads inside a locked transaction.
type Reader interface {
	GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error)
	ListTenants(ctx context.Context) ([]*Tenant, error)
	GetLease(ctx context.Context, id uuid.UUID) (*Lease, error)
	ListLeases(ctx context.Context, filter LeaseFilter) ([]*Lease, error)
	ListAdjustments(ctx context.Context, leaseID uuid.UUID) ([]*RentAdjustment, error)
	ListInvoices(ctx context.Context, leaseID uuid.UUID) ([]*Invoice, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]*Payment, error)
	ListTransfers(ctx context.Context, tenantID uuid.UUID) ([]*Transfer, error)
	GetShopStatus(ctx context.Context, shopID uuid.UUID) (ShopStatus, error)
}

type Repository interface {
	Reader

	// Begin opens a transaction holding an exclusive lock on each of lockIDs
	// until it ends. Locks are taken in ascending order.
	Begin(ctx context.Context, lockIDs ...uuid.UUID) (Tx, error)
}

type Tx interface {
	Reader

	CreateTenant(ctx context.Context, tenant *Tenant) error
	CreateLease(ctx context.Context, lease *Lease) error
	UpdateLease(ctx context.Context, lease *Lease) error
	SetShopStatus(ctx context.Context, shopID uuid.UUID, status ShopStatus) error
	CreateAdjustment(ctx context.Context, adj *RentAdjustment) error
	ReplaceInvoices(ctx context.Context, leaseID uuid.UUID, invoices []*Invoice) error
	UpdateInvoicePayments(ctx context.Context, invoices []*Invoice) error
	CreatePayment(ctx context.Context, p *Payment) error
	SoftDeletePayment(ctx context.Context, id uuid.UUID, reason string, at time.Time) error
	CreateTransfer(ctx context.Context, t *Transfer) error

	Commit() error
	Rollback() error
}

type LeaseFilter struct {
	TenantID *uuid.UUID
	ShopID   *uuid.UUID
	// Status is matched against the derived status, not the stored one.
	Status *LeaseStatus
}

type PaymentFilter struct {
	TenantID       *uuid.UUID
	LeaseID        *uuid.UUID
	IncludeDeleted bool
}

type Service struct {
	repo   Repository
	now    func() time.Time
	window time.Duration
}

type Option func(*Service)

// WithClock sets the source of the current time. Months are taken in the
// location of the returned time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithExpiringSoonWindow(d time.Duration) Option {
	return func(s *Service) { s.window = d }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		now:    time.Now,
		window: DefaultExpiringSoonWindow,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) CreateTenant(ctx context.Context, name string, openingDue int64) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	tenant := &Tenant{Name: name, OpeningDueBalance: openingDue}
	if err := tx.CreateTenant(ctx, tenant); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return tenant, nil
}

func (s *Service) GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	return s.repo.GetTenant(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context) ([]*Tenant, error) {
	return s.repo.ListTenants(ctx)
}

// GetLease returns a lease with its status derived as of now.
func (s *Service) GetLease(ctx context.Context, id uuid.UUID) (*Lease, error) {
	lease, err := s.repo.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	lease.Status = DeriveStatus(lease, s.now(), s.window)

	return lease, nil
}

func (s *Service) ListLeases(ctx context.Context, filter LeaseFilter) ([]*Lease, error) {
	want := filter.Status
	filter.Status = nil

	leases, err := s.repo.ListLeases(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := leases[:0]

	for _, l := range leases {
		l.Status = DeriveStatus(l, now, s.window)
		if want != nil && l.Status != *want {
			continue
		}

		out = append(out, l)
	}

	return out, nil
}

func (s *Service) ListAdjustments(ctx context.Context, leaseID uuid.UUID) ([]*RentAdjustment, error) {
	if _, err := s.repo.GetLease(ctx, leaseID); err != nil {
		return nil, err
	}

	return s.repo.ListAdjustments(ctx, leaseID)
}

func (s *Service) ListInvoices(ctx context.Context, leaseID uuid.UUID) ([]*Invoice, error) {
	if _, err := s.repo.GetLease(ctx, leaseID); err != nil {
		return nil, err
	}

	invoices, err := s.repo.ListInvoices(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	SortInvoices(invoices)

	return invoices, nil
}

func (s *Service) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) ListPayments(ctx context.Context, filter PaymentFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}

// ResolveRentForMonth returns the rent in force for a lease in the given month.
func (s *Service) ResolveRentForMonth(ctx context.Context, leaseID uuid.UUID, year int, month time.Month) (int64, error) {
	if month < time.January || month > time.December {
		return 0, invalid("month", "must be between 1 and 12")
	}

	lease, err := s.repo.GetLease(ctx, leaseID)
	if err != nil {
		return 0, err
	}

	adjustments, err := s.repo.ListAdjustments(ctx, leaseID)
	if err != nil {
		return 0, fmt.Errorf("listing adjustments: %w", err)
	}

	return ResolveRent(lease, adjustments, Month{Year: year, Month: month}), nil
}

type CreateLeaseParams struct {
	TenantID          uuid.UUID
	ShopID            uuid.UUID
	MonthlyRent       int64
	SecurityDeposit   int64
	OpeningDueBalance int64
	StartDate         time.Time
	EndDate           time.Time
}

func (p CreateLeaseParams) validate() error {
	switch {
	case p.TenantID == uuid.Nil:
		return invalid("tenant_id", "is required")
	case p.ShopID == uuid.Nil:
		return invalid("shop_id", "is required")
	case p.MonthlyRent <= 0:
		return invalid("monthly_rent", "must be positive")
	case p.SecurityDeposit < 0:
		return invalid("security_deposit", "must not be negative")
	}

	return validateTerm(p.StartDate, p.EndDate)
}

func validateTerm(start, end time.Time) error {
	if start.IsZero() {
		return invalid("start_date", "is required")
	}

	if !end.IsZero() && end.Before(start) {
		return invalid("end_date", "must not be before the start date")
	}

	return nil
}

// CreateLease occupies a vacant shop and bills every month elapsed since the start date.
func (s *Service) CreateLease(ctx context.Context, params CreateLeaseParams) (*Lease, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx, params.ShopID)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.GetTenant(ctx, params.TenantID); err != nil {
		return nil, fmt.Errorf("getting tenant: %w", err)
	}

	status, err := tx.GetShopStatus(ctx, params.ShopID)
	if err != nil {
		return nil, fmt.Errorf("getting shop: %w", err)
	}

	if status == ShopOccupied {
		return nil, ErrShopOccupied
	}

	lease := &Lease{
		TenantID:          params.TenantID,
		ShopID:            params.ShopID,
		MonthlyRent:       params.MonthlyRent,
		SecurityDeposit:   params.SecurityDeposit,
		OpeningDueBalance: params.OpeningDueBalance,
		StartDate:         params.StartDate,
		EndDate:           params.EndDate,
	}
	lease.Status = DeriveStatus(lease, s.now(), s.window)

	if err := tx.CreateLease(ctx, lease); err != nil {
		return nil, err
	}

	if err := tx.SetShopStatus(ctx, lease.ShopID, ShopOccupied); err != nil {
		return nil, err
	}

	if _, err := s.rebuild(ctx, tx, lease); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	slog.Info("lease created", "lease_id", lease.ID, "tenant_id", lease.TenantID, "shop_id", lease.ShopID)

	return lease, nil
}

// UpdateLeaseParams holds optional changes to a lease's terms. Nil fields are left as they are.
type UpdateLeaseParams struct {
	MonthlyRent     *int64
	SecurityDeposit *int64
	StartDate       *time.Time
	EndDate         *time.Time
}

// UpdateLeaseTerms edits a lease and rebuilds its invoices. The base rent of a
// lease that has been adjusted can only change through AdjustRent.
func (s *Service) UpdateLeaseTerms(ctx context.Context, leaseID uuid.UUID, params UpdateLeaseParams) (*Lease, error) {
	tx, err := s.repo.Begin(ctx, leaseID)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	lease, err := tx.GetLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	if lease.IsTerminated() {
		return nil, ErrLeaseTerminated
	}

	if params.MonthlyRent != nil && *params.MonthlyRent != lease.MonthlyRent {
		if *params.MonthlyRent <= 0 {
			return nil, invalid("monthly_rent", "must be positive")
		}

		adjustments, err := tx.ListAdjustments(ctx, leaseID)
		if err != nil {
			return nil, fmt.Errorf("listing adjustments: %w", err)
		}

		if len(adjustments) > 0 {
			return nil, invalid("monthly_rent", "lease has rent adjustments, record a new adjustment instead")
		}

		lease.MonthlyRent = *params.MonthlyRent
	}

	if params.SecurityDeposit != nil {
		if *params.SecurityDeposit < 0 {
			return nil, invalid("security_deposit", "must not be negative")
		}

		lease.SecurityDeposit = *params.SecurityDeposit
	}

	if params.StartDate != nil {
		lease.StartDate = *params.StartDate
	}

	if params.EndDate != nil {
		lease.EndDate = *params.EndDate
	}

	if err := validateTerm(lease.StartDate, lease.EndDate); err != nil {
		return nil, err
	}

	lease.Status = DeriveStatus(lease, s.now(), s.window)

	if err := tx.UpdateLease(ctx, lease); err != nil {
		return nil, err
	}

	if _, err := s.rebuild(ctx, tx, lease); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return lease, nil
}

// AdjustRent records a rent change taking effect from the month of effective
// onward and reprices the lease's invoices.
func (s *Service) AdjustRent(ctx context.Context, leaseID uuid.UUID, newRent int64, effective time.Time) (*RentAdjustment, error) {
	if newRent <= 0 {
		return nil, invalid("new_rent", "must be positive")
	}

	if effective.IsZero() {
		return nil, invalid("effective_date", "is required")
	}

	tx, err := s.repo.Begin(ctx, leaseID)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	lease, err := tx.GetLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	if lease.IsTerminated() {
		return nil, ErrLeaseTerminated
	}

	if MonthOf(effective).Before(MonthOf(lease.StartDate)) {
		return nil, invalid("effective_date", "must not be before the lease starts")
	}

	adjustments, err := tx.ListAdjustments(ctx, leaseID)
	if err != nil {
		return nil, fmt.Errorf("listing adjustments: %w", err)
	}

	adj := &RentAdjustment{
		LeaseID:       leaseID,
		PreviousRent:  ResolveRent(lease, adjustments, MonthOf(effective)),
		NewRent:       newRent,
		EffectiveDate: effective,
		CreatedAt:     s.now(),
	}

	if err := tx.CreateAdjustment(ctx, adj); err != nil {
		return nil, err
	}

	lease.MonthlyRent = CurrentRent(lease, append(adjustments, adj))
	if err := tx.UpdateLease(ctx, lease); err != nil {
		return nil, err
	}

	if _, err := s.rebuild(ctx, tx, lease); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	slog.Info("rent adjusted", "lease_id", leaseID, "previous_rent", adj.PreviousRent, "new_rent", newRent)

	return adj, nil
}

// RegenerateInvoices discards a lease's invoices, rebuilds one per elapsed
// month and reapplies its funds.
func (s *Service) RegenerateInvoices(ctx context.Context, leaseID uuid.UUID) error {
	tx, err := s.repo.Begin(ctx, leaseID)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	lease, err := tx.GetLease(ctx, leaseID)
	if err != nil {
		return err
	}

	if lease.IsTerminated() {
		return ErrLeaseTerminated
	}

	alloc, err := s.rebuild(ctx, tx, lease)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.Info("invoices regenerated", "lease_id", leaseID, "allocated", alloc.Allocated, "unapplied", alloc.Unapplied)

	return nil
}

type PaymentParams struct {
	LeaseID     uuid.UUID
	Amount      int64
	PaymentDate time.Time
	RentMonths  []Month
	Note        string
}

func (s *Service) RecordPayment(ctx context.Context, params PaymentParams) (*Payment, error) {
	if params.Amount <= 0 {
		return nil, invalid("amount", "must be positive")
	}

	if params.PaymentDate.IsZero() {
		return nil, invalid("payment_date", "is required")
	}

	tx, err := s.repo.Begin(ctx, params.LeaseID)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	lease, err := tx.GetLease(ctx, params.LeaseID)
	if err != nil {
		return nil, err
	}

	if lease.IsTerminated() {
		return nil, ErrLeaseTerminated
	}

	p := &Payment{
		TenantID:    lease.TenantID,
		LeaseID:     lease.ID,
		Amount:      params.Amount,
		PaymentDate: params.PaymentDate,
		RentMonths:  params.RentMonths,
		Note:        params.Note,
	}

	if err := tx.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	if _, err := s.reallocate(ctx, tx, lease); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	slog.Info("payment recorded", "lease_id", lease.ID, "payment_id", p.ID, "amount", p.Amount)

	return p, nil
}

// SoftDeletePayment marks a payment deleted and reapplies the lease's remaining
// funds. Deleting an already deleted payment does nothing.
func (s *Service) SoftDeletePayment(ctx context.Context, paymentID uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return invalid("reason", "is required")
	}

	p, err := s.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	tx, err := s.repo.Begin(ctx, p.LeaseID)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if p, err = tx.GetPayment(ctx, paymentID); err != nil {
		return err
	}

	if p.IsDeleted {
		return nil
	}

	lease, err := tx.GetLease(ctx, p.LeaseID)
	if err != nil {
		return err
	}

	if lease.IsTerminated() {
		return ErrLeaseTerminated
	}

	if err := tx.SoftDeletePayment(ctx, paymentID, reason, s.now()); err != nil {
		return err
	}

	if _, err := s.reallocate(ctx, tx, lease); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.Info("payment deleted", "lease_id", lease.ID, "payment_id", paymentID, "reason", reason)

	return nil
}

// ComputeSettlement previews the termination of a lease without writing anything.
func (s *Service) ComputeSettlement(ctx context.Context, leaseID uuid.UUID, req SettlementRequest) (*Settlement, error) {
	lease, err := s.repo.GetLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	in, err := s.settlementInput(ctx, s.repo, lease, req)
	if err != nil {
		return nil, err
	}

	return ComputeSettlement(in)
}

// TerminateLease settles and freezes a lease. Its invoices are rebuilt one last
// time, credit is pulled from sibling leases if requested, the deposit is applied
// and the shop is released.
func (s *Service) TerminateLease(ctx context.Context, leaseID uuid.UUID, req SettlementRequest) (*Settlement, error) {
	lease, err := s.repo.GetLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	lockIDs := []uuid.UUID{leaseID}

	if req.TransferAmount != nil {
		siblings, err := s.repo.ListLeases(ctx, LeaseFilter{TenantID: &lease.TenantID})
		if err != nil {
			return nil, fmt.Errorf("listing tenant leases: %w", err)
		}

		for _, sib := range siblings {
			if sib.ID != leaseID {
				lockIDs = append(lockIDs, sib.ID)
			}
		}
	}

	tx, err := s.repo.Begin(ctx, lockIDs...)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if lease, err = tx.GetLease(ctx, leaseID); err != nil {
		return nil, err
	}

	in, err := s.settlementInput(ctx, tx, lease, req)
	if err != nil {
		return nil, err
	}

	// Leases that appeared after the lock set was chosen cannot be drained.
	in.Siblings = slices.DeleteFunc(in.Siblings, func(a LeaseAccount) bool {
		return !slices.Contains(lockIDs, a.Lease.ID)
	})

	settlement, err := ComputeSettlement(in)
	if err != nil {
		return nil, err
	}

	for _, t := range settlement.Transfers {
		if err := tx.CreateTransfer(ctx, t); err != nil {
			return nil, err
		}
	}

	transfers := append(in.Transfers, settlement.Transfers...)

	Allocate(in.Invoices, Funds(leaseID, in.Payments, transfers))

	if err := tx.ReplaceInvoices(ctx, leaseID, in.Invoices); err != nil {
		return nil, err
	}

	for _, t := range settlement.Transfers {
		source, err := tx.GetLease(ctx, t.SourceLeaseID)
		if err != nil {
			return nil, err
		}

		// Terminated sources keep their frozen invoices.
		if source.IsTerminated() {
			continue
		}

		if _, err := s.rebuild(ctx, tx, source); err != nil {
			return nil, err
		}
	}

	now := s.now()

	final := in.Lease
	final.Status = StatusTerminated
	final.TerminatedAt = &now
	final.SecurityDepositUsed = settlement.SecurityDepositUsed

	if err := tx.UpdateLease(ctx, final); err != nil {
		return nil, err
	}

	if err := tx.SetShopStatus(ctx, final.ShopID, ShopVacant); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	slog.Info("lease terminated",
		"lease_id", leaseID,
		"transferred", settlement.Transferred,
		"deposit_used", settlement.SecurityDepositUsed,
		"final_settled_amount", settlement.FinalSettledAmount,
	)

	return settlement, nil
}

// settlementInput gathers what a settlement needs through r. Invoices for the
// lease are rebuilt in memory as of now so a preview matches what termination
// would bill. The returned lease is a copy carrying any early end date.
func (s *Service) settlementInput(ctx context.Context, r Reader, lease *Lease, req SettlementRequest) (SettlementInput, error) {
	if lease.IsTerminated() {
		return SettlementInput{}, ErrLeaseTerminated
	}

	l := *lease

	if eff := req.EffectiveDate; eff != nil {
		if eff.Before(l.StartDate) {
			return SettlementInput{}, invalid("effective_date", "must not be before the lease starts")
		}

		if l.EndDate.IsZero() || eff.Before(l.EndDate) {
			l.EndDate = *eff
		}
	}

	now := s.now()

	adjustments, err := r.ListAdjustments(ctx, l.ID)
	if err != nil {
		return SettlementInput{}, fmt.Errorf("listing adjustments: %w", err)
	}

	payments, err := r.ListPayments(ctx, PaymentFilter{TenantID: &l.TenantID})
	if err != nil {
		return SettlementInput{}, fmt.Errorf("listing payments: %w", err)
	}

	transfers, err := r.ListTransfers(ctx, l.TenantID)
	if err != nil {
		return SettlementInput{}, fmt.Errorf("listing transfers: %w", err)
	}

	in := SettlementInput{
		Lease:     &l,
		Invoices:  BuildInvoices(&l, adjustments, now),
		Payments:  payments,
		Transfers: transfers,
		Request:   req,
		Now:       now,
	}

	if req.TransferAmount == nil {
		return in, nil
	}

	leases, err := r.ListLeases(ctx, LeaseFilter{TenantID: &l.TenantID})
	if err != nil {
		return SettlementInput{}, fmt.Errorf("listing tenant leases: %w", err)
	}

	for _, sib := range leases {
		if sib.ID == l.ID {
			continue
		}

		invoices, err := s.siblingInvoices(ctx, r, sib, now)
		if err != nil {
			return SettlementInput{}, err
		}

		in.Siblings = append(in.Siblings, LeaseAccount{Lease: sib, Invoices: invoices, Payments: payments})
	}

	return in, nil
}

// siblingInvoices returns a sibling's invoices as of now so its credit reflects
// months billed since the last refresh. Terminated leases keep their frozen set.
func (s *Service) siblingInvoices(ctx context.Context, r Reader, sib *Lease, now time.Time) ([]*Invoice, error) {
	if sib.IsTerminated() {
		invoices, err := r.ListInvoices(ctx, sib.ID)
		if err != nil {
			return nil, fmt.Errorf("listing invoices: %w", err)
		}

		return invoices, nil
	}

	adjustments, err := r.ListAdjustments(ctx, sib.ID)
	if err != nil {
		return nil, fmt.Errorf("listing adjustments: %w", err)
	}

	return BuildInvoices(sib, adjustments, now), nil
}

func (s *Service) BuildLeaseLedger(ctx context.Context, leaseID uuid.UUID) (*Ledger, error) {
	lease, err := s.repo.GetLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.repo.ListInvoices(ctx, leaseID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	payments, err := s.repo.ListPayments(ctx, PaymentFilter{LeaseID: &leaseID})
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	transfers, err := s.repo.ListTransfers(ctx, lease.TenantID)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}

	return BuildLedger(LedgerInput{
		TenantID:  lease.TenantID,
		Leases:    []*Lease{lease},
		Invoices:  invoices,
		Payments:  payments,
		Transfers: transfers,
	})
}

// BuildTenantLedger merges every lease of a tenant into one statement, opening
// with the tenant's legacy balance.
func (s *Service) BuildTenantLedger(ctx context.Context, tenantID uuid.UUID) (*Ledger, error) {
	acct, err := s.tenantAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return BuildLedger(LedgerInput{
		TenantID:      tenantID,
		TenantOpening: acct.tenant.OpeningDueBalance,
		Leases:        acct.leases,
		Invoices:      acct.invoices,
		Payments:      acct.payments,
		Transfers:     acct.transfers,
	})
}

func (s *Service) LeaseBalance(ctx context.Context, leaseID uuid.UUID) (Balance, error) {
	lease, err := s.repo.GetLease(ctx, leaseID)
	if err != nil {
		return Balance{}, err
	}

	invoices, err := s.repo.ListInvoices(ctx, leaseID)
	if err != nil {
		return Balance{}, fmt.Errorf("listing invoices: %w", err)
	}

	payments, err := s.repo.ListPayments(ctx, PaymentFilter{LeaseID: &leaseID})
	if err != nil {
		return Balance{}, fmt.Errorf("listing payments: %w", err)
	}

	transfers, err := s.repo.ListTransfers(ctx, lease.TenantID)
	if err != nil {
		return Balance{}, fmt.Errorf("listing transfers: %w", err)
	}

	return ComputeBalance(lease, invoices, payments, transfers), nil
}

// TenantBalance is a tenant's position across all of their leases.
type TenantBalance struct {
	TenantID uuid.UUID
	Opening  int64
	Leases   []Balance
	Due      int64
}

func (s *Service) TenantBalances(ctx context.Context, tenantID uuid.UUID) (*TenantBalance, error) {
	acct, err := s.tenantAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	tb := &TenantBalance{
		TenantID: tenantID,
		Opening:  acct.tenant.OpeningDueBalance,
		Due:      acct.tenant.OpeningDueBalance,
	}

	for _, l := range acct.leases {
		b := ComputeBalance(l, acct.invoicesByLease[l.ID], acct.payments, acct.transfers)
		tb.Leases = append(tb.Leases, b)
		tb.Due += b.Due
	}

	return tb, nil
}

type tenantAccounts struct {
	tenant          *Tenant
	leases          []*Lease
	invoices        []*Invoice
	invoicesByLease map[uuid.UUID][]*Invoice
	payments        []*Payment
	transfers       []*Transfer
}

func (s *Service) tenantAccounts(ctx context.Context, tenantID uuid.UUID) (*tenantAccounts, error) {
	tenant, err := s.repo.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	leases, err := s.repo.ListLeases(ctx, LeaseFilter{TenantID: &tenantID})
	if err != nil {
		return nil, fmt.Errorf("listing leases: %w", err)
	}

	acct := &tenantAccounts{
		tenant:          tenant,
		leases:          leases,
		invoicesByLease: make(map[uuid.UUID][]*Invoice, len(leases)),
	}

	for _, l := range leases {
		invoices, err := s.repo.ListInvoices(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("listing invoices: %w", err)
		}

		acct.invoices = append(acct.invoices, invoices...)
		acct.invoicesByLease[l.ID] = invoices
	}

	if acct.payments, err = s.repo.ListPayments(ctx, PaymentFilter{TenantID: &tenantID}); err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	if acct.transfers, err = s.repo.ListTransfers(ctx, tenantID); err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}

	return acct, nil
}

type RefreshResult struct {
	Checked       int
	StatusChanged int
	Regenerated   int
}

// RefreshLeases persists derived statuses and bills any month that has
// elapsed since a lease's invoices were last built. A failing lease is logged
// and skipped; its error is included in the returned error.
func (s *Service) RefreshLeases(ctx context.Context) (RefreshResult, error) {
	var res RefreshResult

	leases, err := s.repo.ListLeases(ctx, LeaseFilter{})
	if err != nil {
		return res, fmt.Errorf("listing leases: %w", err)
	}

	var errs []error

	for _, l := range leases {
		if l.IsTerminated() {
			continue
		}

		res.Checked++

		changed, regenerated, err := s.refreshLease(ctx, l.ID)
		if err != nil {
			slog.Error("failed to refresh lease", "lease_id", l.ID, "error", err)
			errs = append(errs, fmt.Errorf("lease %s: %w", l.ID, err))

			continue
		}

		if changed {
			res.StatusChanged++
		}

		if regenerated {
			res.Regenerated++
		}
	}

	return res, errors.Join(errs...)
}

func (s *Service) refreshLease(ctx context.Context, leaseID uuid.UUID) (changed, regenerated bool, err error) {
	tx, err := s.repo.Begin(ctx, leaseID)
	if err != nil {
		return false, false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	lease, err := tx.GetLease(ctx, leaseID)
	if err != nil {
		return false, false, err
	}

	if lease.IsTerminated() {
		return false, false, nil
	}

	now := s.now()

	invoices, err := tx.ListInvoices(ctx, leaseID)
	if err != nil {
		return false, false, fmt.Errorf("listing invoices: %w", err)
	}

	if len(invoices) != len(ElapsedMonths(lease, now)) {
		if _, err := s.rebuild(ctx, tx, lease); err != nil {
			return false, false, err
		}

		regenerated = true
	}

	if status := DeriveStatus(lease, now, s.window); status != lease.Status {
		lease.Status = status
		if err := tx.UpdateLease(ctx, lease); err != nil {
			return false, false, err
		}

		changed = true
	}

	if !changed && !regenerated {
		return false, false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, false, fmt.Errorf("commit: %w", err)
	}

	return changed, regenerated, nil
}

// rebuild replaces a lease's invoices with a fresh set and applies its funds.
func (s *Service) rebuild(ctx context.Context, tx Tx, lease *Lease) (Allocation, error) {
	adjustments, err := tx.ListAdjustments(ctx, lease.ID)
	if err != nil {
		return Allocation{}, fmt.Errorf("listing adjustments: %w", err)
	}

	funds, err := s.funds(ctx, tx, lease)
	if err != nil {
		return Allocation{}, err
	}

	invoices := BuildInvoices(lease, adjustments, s.now())
	alloc := Allocate(invoices, funds)

	if err := tx.ReplaceInvoices(ctx, lease.ID, invoices); err != nil {
		return Allocation{}, err
	}

	return alloc, nil
}

// reallocate reapplies a lease's funds to its stored invoices and saves the ones that changed.
func (s *Service) reallocate(ctx context.Context, tx Tx, lease *Lease) (Allocation, error) {
	invoices, err := tx.ListInvoices(ctx, lease.ID)
	if err != nil {
		return Allocation{}, fmt.Errorf("listing invoices: %w", err)
	}

	funds, err := s.funds(ctx, tx, lease)
	if err != nil {
		return Allocation{}, err
	}

	alloc := Allocate(invoices, funds)

	if err := tx.UpdateInvoicePayments(ctx, alloc.Changed); err != nil {
		return Allocation{}, err
	}

	return alloc, nil
}

func (s *Service) funds(ctx context.Context, r Reader, lease *Lease) (int64, error) {
	payments, err := r.ListPayments(ctx, PaymentFilter{LeaseID: &lease.ID})
	if err != nil {
		return 0, fmt.Errorf("listing payments: %w", err)
	}

	transfers, err := r.ListTransfers(ctx, lease.TenantID)
	if err != nil {
		return 0, fmt.Errorf("listing transfers: %w", err)
	}

	return Funds(lease.ID, payments, transfers), nil
}
