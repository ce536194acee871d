package ownership

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ownership
type Repository interface {
	CountOwners(ctx context.Context) (int, error)
	CreateOwner(ctx context.Context, owner *Owner) error
	GetOwner(ctx context.Context, id uuid.UUID) (*Owner, error)
	ListOwners(ctx context.Context) ([]*Owner, error)

	CreateShop(ctx context.Context, shop *Shop) error
	GetShop(ctx context.Context, id uuid.UUID) (*Shop, error)
	ListShops(ctx context.Context) ([]*Shop, error)

	ListCollections(ctx context.Context, from, to time.Time) ([]*Collection, error)
	ListHeldDeposits(ctx context.Context) ([]*HeldDeposit, error)

	CreateExpense(ctx context.Context, expense *Expense) error
	ListExpenses(ctx context.Context, from, to time.Time) ([]*Expense, error)

	CreateBankDeposit(ctx context.Context, deposit *BankDeposit) error
	ListBankDeposits(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*BankDeposit, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

type CreateOwnerParams struct {
	Name          string
	BankName      string
	AccountName   string
	AccountNumber string
}

func (s *Service) CreateOwner(ctx context.Context, params CreateOwnerParams) (*Owner, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, invalid("name is required")
	}

	owner := &Owner{
		Name:          name,
		BankName:      params.BankName,
		AccountName:   params.AccountName,
		AccountNumber: params.AccountNumber,
	}
	if err := s.repo.CreateOwner(ctx, owner); err != nil {
		return nil, err
	}

	return owner, nil
}

func (s *Service) GetOwner(ctx context.Context, id uuid.UUID) (*Owner, error) {
	return s.repo.GetOwner(ctx, id)
}

func (s *Service) ListOwners(ctx context.Context) ([]*Owner, error) {
	return s.repo.ListOwners(ctx)
}

type CreateShopParams struct {
	Number        string
	OwnershipType Type
	OwnerID       *uuid.UUID
}

func (s *Service) CreateShop(ctx context.Context, params CreateShopParams) (*Shop, error) {
	number := strings.TrimSpace(params.Number)
	if number == "" {
		return nil, invalid("shop number is required")
	}

	switch params.OwnershipType {
	case TypeSole:
		if params.OwnerID == nil {
			return nil, invalid("a solely owned shop needs an owner")
		}

		if _, err := s.repo.GetOwner(ctx, *params.OwnerID); err != nil {
			return nil, fmt.Errorf("getting owner: %w", err)
		}
	case TypeCommon:
		if params.OwnerID != nil {
			return nil, invalid("a commonly owned shop has no single owner")
		}
	default:
		return nil, invalid("unknown ownership type %q", params.OwnershipType)
	}

	shop := &Shop{Number: number, OwnershipType: params.OwnershipType, OwnerID: params.OwnerID}
	if err := s.repo.CreateShop(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

func (s *Service) GetShop(ctx context.Context, id uuid.UUID) (*Shop, error) {
	return s.repo.GetShop(ctx, id)
}

func (s *Service) ListShops(ctx context.Context) ([]*Shop, error) {
	return s.repo.ListShops(ctx)
}

// Share is what a single owner receives of amount earned by a shop: all of it
// for a solely owned shop, an equal share for a commonly owned one.
func (s *Service) Share(ctx context.Context, shopID uuid.UUID, amount int64) (int64, error) {
	shop, err := s.repo.GetShop(ctx, shopID)
	if err != nil {
		return 0, err
	}

	if shop.OwnershipType == TypeSole {
		return amount, nil
	}

	count, err := s.repo.CountOwners(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting owners: %w", err)
	}

	return AllocateCommonShare(amount, count)
}

type CreateExpenseParams struct {
	Allocation  Allocation
	OwnerID     *uuid.UUID
	Category    string
	Description string
	Amount      int64
	Date        time.Time
}

func (s *Service) CreateExpense(ctx context.Context, params CreateExpenseParams) (*Expense, error) {
	if params.Amount <= 0 {
		return nil, invalid("amount must be positive")
	}

	if params.Date.IsZero() {
		return nil, invalid("date is required")
	}

	switch params.Allocation {
	case AllocationOwner:
		if params.OwnerID == nil {
			return nil, invalid("an owner expense needs an owner")
		}

		if _, err := s.repo.GetOwner(ctx, *params.OwnerID); err != nil {
			return nil, fmt.Errorf("getting owner: %w", err)
		}
	case AllocationCommon:
		if params.OwnerID != nil {
			return nil, invalid("a common expense has no single owner")
		}
	default:
		return nil, invalid("unknown allocation %q", params.Allocation)
	}

	expense := &Expense{
		Allocation:  params.Allocation,
		OwnerID:     params.OwnerID,
		Category:    strings.TrimSpace(params.Category),
		Description: strings.TrimSpace(params.Description),
		Amount:      params.Amount,
		Date:        params.Date,
	}
	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *Service) ListExpenses(ctx context.Context, from, to time.Time) ([]*Expense, error) {
	if to.Before(from) {
		return nil, invalid("range end is before its start")
	}

	return s.repo.ListExpenses(ctx, from, to)
}

type BankDepositParams struct {
	OwnerID   uuid.UUID
	Amount    int64
	Date      time.Time
	Reference string
}

func (s *Service) RecordBankDeposit(ctx context.Context, params BankDepositParams) (*BankDeposit, error) {
	if params.Amount <= 0 {
		return nil, invalid("amount must be positive")
	}

	if params.Date.IsZero() {
		return nil, invalid("date is required")
	}

	if _, err := s.repo.GetOwner(ctx, params.OwnerID); err != nil {
		return nil, fmt.Errorf("getting owner: %w", err)
	}

	deposit := &BankDeposit{
		OwnerID:   params.OwnerID,
		Amount:    params.Amount,
		Date:      params.Date,
		Reference: strings.TrimSpace(params.Reference),
	}
	if err := s.repo.CreateBankDeposit(ctx, deposit); err != nil {
		return nil, err
	}

	return deposit, nil
}

func (s *Service) ListBankDeposits(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*BankDeposit, error) {
	if to.Before(from) {
		return nil, invalid("range end is before its start")
	}

	return s.repo.ListBankDeposits(ctx, ownerID, from, to)
}

// ReportLine is one owner's part of a single shop's takings.
type ReportLine struct {
	ShopID     uuid.UUID
	ShopNumber string
	Type       Type
	Collected  int64
	Share      int64
}

type OwnerReport struct {
	Owner      *Owner
	From       time.Time
	To         time.Time
	OwnerCount int
	Shops      []ReportLine

	RentCollected  int64
	OwnExpenses    int64
	CommonExpenses int64
	DepositsHeld   int64
	Banked         int64
	// NetIncome is RentCollected less both kinds of expenses.
	NetIncome int64
	// Unbanked is NetIncome not yet matched by a bank deposit.
	Unbanked int64
}

// OwnerReport summarises what an owner earned and spent between from and to,
// inclusive. Common amounts are divided by the number of owners registered now.
func (s *Service) OwnerReport(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*OwnerReport, error) {
	if to.Before(from) {
		return nil, invalid("report end is before its start")
	}

	owner, err := s.repo.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting owners: %w", err)
	}

	shops, err := s.repo.ListShops(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing shops: %w", err)
	}

	report := &OwnerReport{Owner: owner, From: from, To: to, OwnerCount: count}

	// share returns the owner's cut of amount earned by shop, and whether they have one.
	share := func(shop *Shop, amount int64) (int64, bool, error) {
		switch {
		case shop.OwnedBy(ownerID):
			return amount, true, nil
		case shop.OwnershipType == TypeCommon:
			v, err := AllocateCommonShare(amount, count)
			return v, err == nil, err
		default:
			return 0, false, nil
		}
	}

	byShop := make(map[uuid.UUID]*Shop, len(shops))
	for _, shop := range shops {
		byShop[shop.ID] = shop
	}

	collections, err := s.repo.ListCollections(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	collected := make(map[uuid.UUID]int64)
	for _, c := range collections {
		collected[c.ShopID] += c.Amount
	}

	for _, shop := range shops {
		v, ok, err := share(shop, collected[shop.ID])
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		report.Shops = append(report.Shops, ReportLine{
			ShopID:     shop.ID,
			ShopNumber: shop.Number,
			Type:       shop.OwnershipType,
			Collected:  collected[shop.ID],
			Share:      v,
		})
		report.RentCollected += v
	}

	expenses, err := s.repo.ListExpenses(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	var common int64

	for _, e := range expenses {
		switch {
		case e.Allocation == AllocationOwner && e.OwnerID != nil && *e.OwnerID == ownerID:
			report.OwnExpenses += e.Amount
		case e.Allocation == AllocationCommon:
			common += e.Amount
		}
	}

	if common != 0 {
		if report.CommonExpenses, err = AllocateCommonShare(common, count); err != nil {
			return nil, err
		}
	}

	held, err := s.repo.ListHeldDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing held deposits: %w", err)
	}

	for _, d := range held {
		shop, ok := byShop[d.ShopID]
		if !ok {
			continue
		}

		v, _, err := share(shop, d.Amount)
		if err != nil {
			return nil, err
		}

		report.DepositsHeld += v
	}

	deposits, err := s.repo.ListBankDeposits(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing bank deposits: %w", err)
	}

	for _, d := range deposits {
		report.Banked += d.Amount
	}

	report.NetIncome = report.RentCollected - report.OwnExpenses - report.CommonExpenses
	report.Unbanked = report.NetIncome - report.Banked

	return report, nil
}
