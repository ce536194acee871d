package billing_test

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

// memState is an in-memory billing store. Values are copied in and out so a
// transaction can work on a private copy until it commits.
type memState struct {
	tenants     map[uuid.UUID]billing.Tenant
	leases      map[uuid.UUID]billing.Lease
	shops       map[uuid.UUID]billing.ShopStatus
	adjustments []billing.RentAdjustment
	invoices    map[uuid.UUID][]billing.Invoice
	payments    []billing.Payment
	transfers   []billing.Transfer
}

func (s *memState) clone() *memState {
	c := &memState{
		tenants:     maps.Clone(s.tenants),
		leases:      maps.Clone(s.leases),
		shops:       maps.Clone(s.shops),
		adjustments: slices.Clone(s.adjustments),
		invoices:    make(map[uuid.UUID][]billing.Invoice, len(s.invoices)),
		payments:    slices.Clone(s.payments),
		transfers:   slices.Clone(s.transfers),
	}

	for id, invs := range s.invoices {
		c.invoices[id] = slices.Clone(invs)
	}

	return c
}

func (s *memState) GetTenant(_ context.Context, id uuid.UUID) (*billing.Tenant, error) {
	t, ok := s.tenants[id]
	if !ok {
		return nil, billing.ErrNotFound
	}

	return &t, nil
}

func (s *memState) ListTenants(_ context.Context) ([]*billing.Tenant, error) {
	var out []*billing.Tenant
	for _, t := range s.tenants {
		out = append(out, &t)
	}

	return out, nil
}

func (s *memState) GetLease(_ context.Context, id uuid.UUID) (*billing.Lease, error) {
	l, ok := s.leases[id]
	if !ok {
		return nil, billing.ErrNotFound
	}

	return &l, nil
}

func (s *memState) ListLeases(_ context.Context, filter billing.LeaseFilter) ([]*billing.Lease, error) {
	var out []*billing.Lease

	for _, l := range s.leases {
		if filter.TenantID != nil && l.TenantID != *filter.TenantID {
			continue
		}

		if filter.ShopID != nil && l.ShopID != *filter.ShopID {
			continue
		}

		if filter.Status != nil && l.Status != *filter.Status {
			continue
		}

		out = append(out, &l)
	}

	slices.SortFunc(out, func(a, b *billing.Lease) int { return bytes.Compare(a.ID[:], b.ID[:]) })

	return out, nil
}

func (s *memState) ListAdjustments(_ context.Context, leaseID uuid.UUID) ([]*billing.RentAdjustment, error) {
	var out []*billing.RentAdjustment

	for _, a := range s.adjustments {
		if a.LeaseID == leaseID {
			out = append(out, &a)
		}
	}

	return out, nil
}

func (s *memState) ListInvoices(_ context.Context, leaseID uuid.UUID) ([]*billing.Invoice, error) {
	var out []*billing.Invoice
	for _, inv := range s.invoices[leaseID] {
		out = append(out, &inv)
	}

	return out, nil
}

func (s *memState) GetPayment(_ context.Context, id uuid.UUID) (*billing.Payment, error) {
	for _, p := range s.payments {
		if p.ID == id {
			return &p, nil
		}
	}

	return nil, billing.ErrNotFound
}

func (s *memState) ListPayments(_ context.Context, filter billing.PaymentFilter) ([]*billing.Payment, error) {
	var out []*billing.Payment

	for _, p := range s.payments {
		if filter.TenantID != nil && p.TenantID != *filter.TenantID {
			continue
		}

		if filter.LeaseID != nil && p.LeaseID != *filter.LeaseID {
			continue
		}

		if p.IsDeleted && !filter.IncludeDeleted {
			continue
		}

		out = append(out, &p)
	}

	return out, nil
}

func (s *memState) ListTransfers(_ context.Context, tenantID uuid.UUID) ([]*billing.Transfer, error) {
	var out []*billing.Transfer

	for _, t := range s.transfers {
		if t.TenantID == tenantID {
			out = append(out, &t)
		}
	}

	return out, nil
}

func (s *memState) GetShopStatus(_ context.Context, shopID uuid.UUID) (billing.ShopStatus, error) {
	status, ok := s.shops[shopID]
	if !ok {
		return "", billing.ErrNotFound
	}

	return status, nil
}

type memRepo struct {
	*memState

	locks   [][]uuid.UUID
	commits int

	// beforeBegin runs once before the next transaction snapshots the state.
	beforeBegin func(*memState)
}

func newMemRepo() *memRepo {
	return &memRepo{memState: &memState{
		tenants:  make(map[uuid.UUID]billing.Tenant),
		leases:   make(map[uuid.UUID]billing.Lease),
		shops:    make(map[uuid.UUID]billing.ShopStatus),
		invoices: make(map[uuid.UUID][]billing.Invoice),
	}}
}

func (r *memRepo) addShop() uuid.UUID {
	id := uuid.New()
	r.shops[id] = billing.ShopVacant

	return id
}

func (r *memRepo) Begin(_ context.Context, lockIDs ...uuid.UUID) (billing.Tx, error) {
	r.locks = append(r.locks, lockIDs)

	if hook := r.beforeBegin; hook != nil {
		r.beforeBegin = nil
		hook(r.memState)
	}

	return &memTx{memState: r.memState.clone(), repo: r}, nil
}

type memTx struct {
	*memState

	repo *memRepo
	done bool
}

func (t *memTx) Commit() error {
	if !t.done {
		*t.repo.memState = *t.memState
		t.repo.commits++
		t.done = true
	}

	return nil
}

func (t *memTx) Rollback() error {
	t.done = true
	return nil
}

func (t *memTx) CreateTenant(_ context.Context, tenant *billing.Tenant) error {
	tenant.ID = uuid.New()
	tenant.CreatedAt = time.Now()
	t.tenants[tenant.ID] = *tenant

	return nil
}

func (t *memTx) CreateLease(_ context.Context, l *billing.Lease) error {
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	t.leases[l.ID] = *l

	return nil
}

func (t *memTx) UpdateLease(_ context.Context, l *billing.Lease) error {
	if _, ok := t.leases[l.ID]; !ok {
		return billing.ErrNotFound
	}

	t.leases[l.ID] = *l

	return nil
}

func (t *memTx) SetShopStatus(_ context.Context, shopID uuid.UUID, status billing.ShopStatus) error {
	t.shops[shopID] = status
	return nil
}

func (t *memTx) CreateAdjustment(_ context.Context, a *billing.RentAdjustment) error {
	a.ID = uuid.New()
	t.adjustments = append(t.adjustments, *a)

	return nil
}

func (t *memTx) ReplaceInvoices(_ context.Context, leaseID uuid.UUID, invoices []*billing.Invoice) error {
	stored := make([]billing.Invoice, 0, len(invoices))

	for _, inv := range invoices {
		inv.ID = uuid.New()
		inv.LeaseID = leaseID
		stored = append(stored, *inv)
	}

	t.invoices[leaseID] = stored

	return nil
}

func (t *memTx) UpdateInvoicePayments(_ context.Context, invoices []*billing.Invoice) error {
	for _, inv := range invoices {
		stored := t.invoices[inv.LeaseID]
		for i := range stored {
			if stored[i].ID == inv.ID {
				stored[i].IsPaid = inv.IsPaid
				stored[i].PaidAmount = inv.PaidAmount
			}
		}
	}

	return nil
}

func (t *memTx) CreatePayment(_ context.Context, p *billing.Payment) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	t.payments = append(t.payments, *p)

	return nil
}

func (t *memTx) SoftDeletePayment(_ context.Context, id uuid.UUID, reason string, at time.Time) error {
	for i := range t.payments {
		if t.payments[i].ID == id {
			t.payments[i].IsDeleted = true
			t.payments[i].DeletedReason = reason
			t.payments[i].DeletedAt = &at
		}
	}

	return nil
}

func (t *memTx) CreateTransfer(_ context.Context, tr *billing.Transfer) error {
	tr.ID = uuid.New()
	t.transfers = append(t.transfers, *tr)

	return nil
}
