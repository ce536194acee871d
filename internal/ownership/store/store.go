package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CountOwners(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM owners`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting owners: %w", err)
	}

	return n, nil
}

func (s *Store) CreateOwner(ctx context.Context, o *ownership.Owner) error {
	query := `
		INSERT INTO owners (name, bank_name, account_name, account_number, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, o.Name, o.BankName, o.AccountName, o.AccountNumber).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("creating owner: %w", err)
	}

	return nil
}

const selectOwnerColumns = `id, name, bank_name, account_name, account_number, created_at`

func (s *Store) GetOwner(ctx context.Context, id uuid.UUID) (*ownership.Owner, error) {
	var o ownership.Owner

	err := s.db.QueryRowContext(ctx, `SELECT `+selectOwnerColumns+` FROM owners WHERE id = $1`, id).
		Scan(&o.ID, &o.Name, &o.BankName, &o.AccountName, &o.AccountNumber, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ownership.ErrNotFound
		}

		return nil, fmt.Errorf("getting owner: %w", err)
	}

	return &o, nil
}

func (s *Store) ListOwners(ctx context.Context) ([]*ownership.Owner, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectOwnerColumns+` FROM owners ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	defer rows.Close()

	var owners []*ownership.Owner

	for rows.Next() {
		var o ownership.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.BankName, &o.AccountName, &o.AccountNumber, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning owner: %w", err)
		}

		owners = append(owners, &o)
	}

	return owners, rows.Err()
}

func (s *Store) CreateShop(ctx context.Context, shop *ownership.Shop) error {
	query := `
		INSERT INTO shops (number, ownership_type, owner_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, status, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, shop.Number, shop.OwnershipType, shop.OwnerID).Scan(&shop.ID, &shop.Status, &shop.CreatedAt); err != nil {
		return fmt.Errorf("creating shop: %w", err)
	}

	return nil
}

const selectShopColumns = `id, number, ownership_type, owner_id, status, created_at`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanShop(sc scanner) (*ownership.Shop, error) {
	var shop ownership.Shop

	var typ string

	if err := sc.Scan(&shop.ID, &shop.Number, &typ, &shop.OwnerID, &shop.Status, &shop.CreatedAt); err != nil {
		return nil, err
	}

	shop.OwnershipType = ownership.Type(typ)

	return &shop, nil
}

func (s *Store) GetShop(ctx context.Context, id uuid.UUID) (*ownership.Shop, error) {
	shop, err := scanShop(s.db.QueryRowContext(ctx, `SELECT `+selectShopColumns+` FROM shops WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ownership.ErrNotFound
		}

		return nil, fmt.Errorf("getting shop: %w", err)
	}

	return shop, nil
}

func (s *Store) ListShops(ctx context.Context) ([]*ownership.Shop, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectShopColumns+` FROM shops ORDER BY number ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing shops: %w", err)
	}
	defer rows.Close()

	var shops []*ownership.Shop

	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shop: %w", err)
		}

		shops = append(shops, shop)
	}

	return shops, rows.Err()
}

// ListCollections returns active payments dated between from and to, inclusive,
// attributed to the shop of the lease they were paid against.
func (s *Store) ListCollections(ctx context.Context, from, to time.Time) ([]*ownership.Collection, error) {
	query := `
		SELECT p.id, l.shop_id, p.amount, p.payment_date
		FROM payments p
		JOIN leases l ON l.id = p.lease_id
		WHERE NOT p.is_deleted AND p.payment_date >= $1 AND p.payment_date <= $2
		ORDER BY p.payment_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	defer rows.Close()

	var out []*ownership.Collection

	for rows.Next() {
		var c ownership.Collection
		if err := rows.Scan(&c.PaymentID, &c.ShopID, &c.Amount, &c.Date); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}

		out = append(out, &c)
	}

	return out, rows.Err()
}

func (s *Store) ListHeldDeposits(ctx context.Context) ([]*ownership.HeldDeposit, error) {
	query := `
		SELECT id, shop_id, security_deposit - security_deposit_used
		FROM leases
		WHERE status <> 'terminated' AND security_deposit > security_deposit_used
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing held deposits: %w", err)
	}
	defer rows.Close()

	var out []*ownership.HeldDeposit

	for rows.Next() {
		var d ownership.HeldDeposit
		if err := rows.Scan(&d.LeaseID, &d.ShopID, &d.Amount); err != nil {
			return nil, fmt.Errorf("scanning held deposit: %w", err)
		}

		out = append(out, &d)
	}

	return out, rows.Err()
}

func (s *Store) CreateExpense(ctx context.Context, e *ownership.Expense) error {
	query := `
		INSERT INTO expenses (allocation, owner_id, category, description, amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Allocation,
		e.OwnerID,
		e.Category,
		e.Description,
		e.Amount,
		e.Date,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) ListExpenses(ctx context.Context, from, to time.Time) ([]*ownership.Expense, error) {
	query := `
		SELECT id, allocation, owner_id, category, description, amount, date, created_at
		FROM expenses
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var out []*ownership.Expense

	for rows.Next() {
		var e ownership.Expense

		var alloc string

		if err := rows.Scan(&e.ID, &alloc, &e.OwnerID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		e.Allocation = ownership.Allocation(alloc)
		out = append(out, &e)
	}

	return out, rows.Err()
}

func (s *Store) CreateBankDeposit(ctx context.Context, d *ownership.BankDeposit) error {
	query := `
		INSERT INTO bank_deposits (owner_id, amount, date, reference, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, d.OwnerID, d.Amount, d.Date, d.Reference).Scan(&d.ID, &d.CreatedAt); err != nil {
		return fmt.Errorf("creating bank deposit: %w", err)
	}

	return nil
}

func (s *Store) ListBankDeposits(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*ownership.BankDeposit, error) {
	query := `
		SELECT id, owner_id, amount, date, reference, created_at
		FROM bank_deposits
		WHERE owner_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing bank deposits: %w", err)
	}
	defer rows.Close()

	var out []*ownership.BankDeposit

	for rows.Next() {
		var d ownership.BankDeposit
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Amount, &d.Date, &d.Reference, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bank deposit: %w", err)
		}

		out = append(out, &d)
	}

	return out, rows.Err()
}
