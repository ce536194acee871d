package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// reader holds the queries shared by Store and its transactions.
type reader struct {
	q queryer
}

type Store struct {
	reader
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{reader: reader{q: db}, db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return billing.ErrNotFound
	}

	return fmt.Errorf("getting %s: %w", what, err)
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func (r reader) GetTenant(ctx context.Context, id uuid.UUID) (*billing.Tenant, error) {
	query := `SELECT id, name, opening_due_balance, created_at FROM tenants WHERE id = $1`

	var t billing.Tenant
	if err := r.q.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.OpeningDueBalance, &t.CreatedAt); err != nil {
		return nil, notFound(err, "tenant")
	}

	return &t, nil
}

func (r reader) ListTenants(ctx context.Context) ([]*billing.Tenant, error) {
	query := `SELECT id, name, opening_due_balance, created_at FROM tenants ORDER BY name ASC`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*billing.Tenant

	for rows.Next() {
		var t billing.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.OpeningDueBalance, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tenant: %w", err)
		}

		tenants = append(tenants, &t)
	}

	return tenants, rows.Err()
}

const selectLeaseColumns = `
	id, tenant_id, shop_id, monthly_rent, security_deposit, security_deposit_used,
	opening_due_balance, start_date, end_date, status, terminated_at, created_at, updated_at
`

// scanLease expects the columns of selectLeaseColumns in order.
func scanLease(s scanner) (*billing.Lease, error) {
	var l billing.Lease

	var end sql.NullTime

	var status string

	if err := s.Scan(
		&l.ID, &l.TenantID, &l.ShopID, &l.MonthlyRent, &l.SecurityDeposit, &l.SecurityDepositUsed,
		&l.OpeningDueBalance, &l.StartDate, &end, &status, &l.TerminatedAt, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.EndDate = end.Time
	l.Status = billing.LeaseStatus(status)

	return &l, nil
}

func (r reader) GetLease(ctx context.Context, id uuid.UUID) (*billing.Lease, error) {
	query := `SELECT ` + selectLeaseColumns + ` FROM leases WHERE id = $1`

	l, err := scanLease(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "lease")
	}

	return l, nil
}

func (r reader) ListLeases(ctx context.Context, filter billing.LeaseFilter) ([]*billing.Lease, error) {
	query := `SELECT ` + selectLeaseColumns + ` FROM leases WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.TenantID != nil {
		query += fmt.Sprintf(" AND tenant_id = $%d", argIdx)

		args = append(args, *filter.TenantID)
		argIdx++
	}

	if filter.ShopID != nil {
		query += fmt.Sprintf(" AND shop_id = $%d", argIdx)

		args = append(args, *filter.ShopID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
	}

	query += " ORDER BY start_date ASC, id ASC"

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing leases: %w", err)
	}
	defer rows.Close()

	var leases []*billing.Lease

	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lease: %w", err)
		}

		leases = append(leases, l)
	}

	return leases, rows.Err()
}

func (r reader) ListAdjustments(ctx context.Context, leaseID uuid.UUID) ([]*billing.RentAdjustment, error) {
	query := `
		SELECT id, lease_id, previous_rent, new_rent, effective_date, created_at
		FROM rent_adjustments
		WHERE lease_id = $1
		ORDER BY effective_date ASC, created_at ASC
	`

	rows, err := r.q.QueryContext(ctx, query, leaseID)
	if err != nil {
		return nil, fmt.Errorf("listing adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []*billing.RentAdjustment

	for rows.Next() {
		var a billing.RentAdjustment
		if err := rows.Scan(&a.ID, &a.LeaseID, &a.PreviousRent, &a.NewRent, &a.EffectiveDate, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning adjustment: %w", err)
		}

		adjustments = append(adjustments, &a)
	}

	return adjustments, rows.Err()
}

func (r reader) ListInvoices(ctx context.Context, leaseID uuid.UUID) ([]*billing.Invoice, error) {
	query := `
		SELECT id, lease_id, year, month, amount, is_paid, paid_amount, created_at
		FROM rent_invoices
		WHERE lease_id = $1
		ORDER BY year ASC, month ASC
	`

	rows, err := r.q.QueryContext(ctx, query, leaseID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*billing.Invoice

	for rows.Next() {
		var inv billing.Invoice

		var month int

		if err := rows.Scan(&inv.ID, &inv.LeaseID, &inv.Year, &month, &inv.Amount, &inv.IsPaid, &inv.PaidAmount, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		inv.Month = time.Month(month)
		invoices = append(invoices, &inv)
	}

	return invoices, rows.Err()
}

const selectPaymentColumns = `
	id, tenant_id, lease_id, amount, payment_date, rent_months, note,
	is_deleted, deleted_reason, deleted_at, created_at
`

func scanPayment(s scanner) (*billing.Payment, error) {
	var p billing.Payment

	var months []byte

	if err := s.Scan(
		&p.ID, &p.TenantID, &p.LeaseID, &p.Amount, &p.PaymentDate, &months, &p.Note,
		&p.IsDeleted, &p.DeletedReason, &p.DeletedAt, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(months) > 0 {
		if err := json.Unmarshal(months, &p.RentMonths); err != nil {
			return nil, fmt.Errorf("decoding rent months: %w", err)
		}
	}

	return &p, nil
}

func (r reader) GetPayment(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "payment")
	}

	return p, nil
}

func (r reader) ListPayments(ctx context.Context, filter billing.PaymentFilter) ([]*billing.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.TenantID != nil {
		query += fmt.Sprintf(" AND tenant_id = $%d", argIdx)

		args = append(args, *filter.TenantID)
		argIdx++
	}

	if filter.LeaseID != nil {
		query += fmt.Sprintf(" AND lease_id = $%d", argIdx)

		args = append(args, *filter.LeaseID)
	}

	if !filter.IncludeDeleted {
		query += " AND NOT is_deleted"
	}

	query += " ORDER BY payment_date ASC, created_at ASC"

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*billing.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r reader) ListTransfers(ctx context.Context, tenantID uuid.UUID) ([]*billing.Transfer, error) {
	query := `
		SELECT id, tenant_id, source_lease_id, target_lease_id, amount, transfer_date, note, created_at
		FROM ledger_transfers
		WHERE tenant_id = $1
		ORDER BY transfer_date ASC, created_at ASC
	`

	rows, err := r.q.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*billing.Transfer

	for rows.Next() {
		var t billing.Transfer
		if err := rows.Scan(&t.ID, &t.TenantID, &t.SourceLeaseID, &t.TargetLeaseID, &t.Amount, &t.TransferDate, &t.Note, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}

		transfers = append(transfers, &t)
	}

	return transfers, rows.Err()
}

func (r reader) GetShopStatus(ctx context.Context, shopID uuid.UUID) (billing.ShopStatus, error) {
	var status string
	if err := r.q.QueryRowContext(ctx, `SELECT status FROM shops WHERE id = $1`, shopID).Scan(&status); err != nil {
		return "", notFound(err, "shop")
	}

	return billing.ShopStatus(status), nil
}

// lockKey maps an entity ID onto the bigint keyspace of Postgres advisory locks.
func lockKey(id uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(id[:])

	return int64(h.Sum64())
}

type leaseTx struct {
	reader
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context, lockIDs ...uuid.UUID) (billing.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning tx: %w", err)
	}

	ids := slices.Clone(lockIDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	for _, id := range ids {
		if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey(id)); err != nil {
			dbTx.Rollback()
			return nil, fmt.Errorf("acquiring lock for %s: %w", id, err)
		}
	}

	return &leaseTx{reader: reader{q: dbTx}, tx: dbTx}, nil
}

func (t *leaseTx) Commit() error   { return t.tx.Commit() }
func (t *leaseTx) Rollback() error { return t.tx.Rollback() }

func (t *leaseTx) CreateTenant(ctx context.Context, tenant *billing.Tenant) error {
	query := `
		INSERT INTO tenants (name, opening_due_balance, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := t.tx.QueryRowContext(ctx, query, tenant.Name, tenant.OpeningDueBalance).Scan(&tenant.ID, &tenant.CreatedAt); err != nil {
		return fmt.Errorf("creating tenant: %w", err)
	}

	return nil
}

func (t *leaseTx) CreateLease(ctx context.Context, l *billing.Lease) error {
	query := `
		INSERT INTO leases (tenant_id, shop_id, monthly_rent, security_deposit, security_deposit_used,
			opening_due_balance, start_date, end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		l.TenantID,
		l.ShopID,
		l.MonthlyRent,
		l.SecurityDeposit,
		l.SecurityDepositUsed,
		l.OpeningDueBalance,
		l.StartDate,
		nullTime(l.EndDate),
		l.Status,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating lease: %w", err)
	}

	return nil
}

func (t *leaseTx) UpdateLease(ctx context.Context, l *billing.Lease) error {
	query := `
		UPDATE leases
		SET monthly_rent = $1, security_deposit = $2, security_deposit_used = $3, opening_due_balance = $4,
			start_date = $5, end_date = $6, status = $7, terminated_at = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		l.MonthlyRent,
		l.SecurityDeposit,
		l.SecurityDepositUsed,
		l.OpeningDueBalance,
		l.StartDate,
		nullTime(l.EndDate),
		l.Status,
		l.TerminatedAt,
		l.ID,
	).Scan(&l.UpdatedAt)
	if err != nil {
		return notFound(err, "lease")
	}

	return nil
}

func (t *leaseTx) SetShopStatus(ctx context.Context, shopID uuid.UUID, status billing.ShopStatus) error {
	if _, err := t.tx.ExecContext(ctx, `UPDATE shops SET status = $1 WHERE id = $2`, status, shopID); err != nil {
		return fmt.Errorf("updating shop status: %w", err)
	}

	return nil
}

func (t *leaseTx) CreateAdjustment(ctx context.Context, a *billing.RentAdjustment) error {
	query := `
		INSERT INTO rent_adjustments (lease_id, previous_rent, new_rent, effective_date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	if err := t.tx.QueryRowContext(ctx, query, a.LeaseID, a.PreviousRent, a.NewRent, a.EffectiveDate).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("creating adjustment: %w", err)
	}

	return nil
}

// ReplaceInvoices deletes every invoice of the lease and inserts invoices in its place.
func (t *leaseTx) ReplaceInvoices(ctx context.Context, leaseID uuid.UUID, invoices []*billing.Invoice) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM rent_invoices WHERE lease_id = $1`, leaseID); err != nil {
		return fmt.Errorf("deleting invoices: %w", err)
	}

	query := `
		INSERT INTO rent_invoices (lease_id, year, month, amount, is_paid, paid_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	for _, inv := range invoices {
		err := t.tx.QueryRowContext(ctx, query,
			leaseID,
			inv.Year,
			int(inv.Month),
			inv.Amount,
			inv.IsPaid,
			inv.PaidAmount,
		).Scan(&inv.ID, &inv.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating invoice %s: %w", inv.Period(), err)
		}
	}

	return nil
}

func (t *leaseTx) UpdateInvoicePayments(ctx context.Context, invoices []*billing.Invoice) error {
	query := `UPDATE rent_invoices SET is_paid = $1, paid_amount = $2 WHERE id = $3`

	for _, inv := range invoices {
		if _, err := t.tx.ExecContext(ctx, query, inv.IsPaid, inv.PaidAmount, inv.ID); err != nil {
			return fmt.Errorf("updating invoice %s: %w", inv.Period(), err)
		}
	}

	return nil
}

func (t *leaseTx) CreatePayment(ctx context.Context, p *billing.Payment) error {
	months, err := json.Marshal(p.RentMonths)
	if err != nil {
		return fmt.Errorf("encoding rent months: %w", err)
	}

	if p.RentMonths == nil {
		months = []byte("[]")
	}

	query := `
		INSERT INTO payments (tenant_id, lease_id, amount, payment_date, rent_months, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err = t.tx.QueryRowContext(ctx, query,
		p.TenantID,
		p.LeaseID,
		p.Amount,
		p.PaymentDate,
		string(months),
		p.Note,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (t *leaseTx) SoftDeletePayment(ctx context.Context, id uuid.UUID, reason string, at time.Time) error {
	query := `
		UPDATE payments
		SET is_deleted = TRUE, deleted_reason = $1, deleted_at = $2
		WHERE id = $3 AND NOT is_deleted
	`

	if _, err := t.tx.ExecContext(ctx, query, reason, at, id); err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}

	return nil
}

func (t *leaseTx) CreateTransfer(ctx context.Context, tr *billing.Transfer) error {
	query := `
		INSERT INTO ledger_transfers (tenant_id, source_lease_id, target_lease_id, amount, transfer_date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		tr.TenantID,
		tr.SourceLeaseID,
		tr.TargetLeaseID,
		tr.Amount,
		tr.TransferDate,
		tr.Note,
	).Scan(&tr.ID, &tr.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transfer: %w", err)
	}

	return nil
}
