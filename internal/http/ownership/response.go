package ownership

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
)

type ownerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	BankName      string    `json:"bank_name,omitempty"`
	AccountName   string    `json:"account_name,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toOwnerResponse(o *ownership.Owner) ownerResponse {
	return ownerResponse{
		ID:            o.ID,
		Name:          o.Name,
		BankName:      o.BankName,
		AccountName:   o.AccountName,
		AccountNumber: o.AccountNumber,
		CreatedAt:     o.CreatedAt,
	}
}

type shopResponse struct {
	ID            uuid.UUID      `json:"id"`
	Number        string         `json:"number"`
	OwnershipType ownership.Type `json:"ownership_type"`
	OwnerID       *uuid.UUID     `json:"owner_id,omitempty"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

func toShopResponse(s *ownership.Shop) shopResponse {
	return shopResponse{
		ID:            s.ID,
		Number:        s.Number,
		OwnershipType: s.OwnershipType,
		OwnerID:       s.OwnerID,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
	}
}

type shareResponse struct {
	ShopID uuid.UUID `json:"shop_id"`
	Amount int64     `json:"amount"`
	Share  int64     `json:"share"`
}

type expenseResponse struct {
	ID          uuid.UUID            `json:"id"`
	Allocation  ownership.Allocation `json:"allocation"`
	OwnerID     *uuid.UUID           `json:"owner_id,omitempty"`
	Category    string               `json:"category"`
	Description string               `json:"description,omitempty"`
	Amount      int64                `json:"amount"`
	Date        time.Time            `json:"date"`
	CreatedAt   time.Time            `json:"created_at"`
}

func toExpenseResponse(e *ownership.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Allocation:  e.Allocation,
		OwnerID:     e.OwnerID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

type bankDepositResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Amount    int64     `json:"amount"`
	Date      time.Time `json:"date"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toBankDepositResponse(d *ownership.BankDeposit) bankDepositResponse {
	return bankDepositResponse{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Amount:    d.Amount,
		Date:      d.Date,
		Reference: d.Reference,
		CreatedAt: d.CreatedAt,
	}
}

type reportLineResponse struct {
	ShopID     uuid.UUID      `json:"shop_id"`
	ShopNumber string         `json:"shop_number"`
	Type       ownership.Type `json:"type"`
	Collected  int64          `json:"collected"`
	Share      int64          `json:"share"`
}

type reportResponse struct {
	Owner          ownerResponse        `json:"owner"`
	From           string               `json:"from"`
	To             string               `json:"to"`
	OwnerCount     int                  `json:"owner_count"`
	Shops          []reportLineResponse `json:"shops"`
	RentCollected  int64                `json:"rent_collected"`
	OwnExpenses    int64                `json:"own_expenses"`
	CommonExpenses int64                `json:"common_expenses"`
	DepositsHeld   int64                `json:"deposits_held"`
	Banked         int64                `json:"banked"`
	NetIncome      int64                `json:"net_income"`
	Unbanked       int64                `json:"unbanked"`
}

func toReportResponse(r *ownership.OwnerReport) reportResponse {
	shops := make([]reportLineResponse, len(r.Shops))
	for i, line := range r.Shops {
		shops[i] = reportLineResponse{
			ShopID:     line.ShopID,
			ShopNumber: line.ShopNumber,
			Type:       line.Type,
			Collected:  line.Collected,
			Share:      line.Share,
		}
	}

	return reportResponse{
		Owner:          toOwnerResponse(r.Owner),
		From:           r.From.Format(time.DateOnly),
		To:             r.To.Format(time.DateOnly),
		OwnerCount:     r.OwnerCount,
		Shops:          shops,
		RentCollected:  r.RentCollected,
		OwnExpenses:    r.OwnExpenses,
		CommonExpenses: r.CommonExpenses,
		DepositsHeld:   r.DepositsHeld,
		Banked:         r.Banked,
		NetIncome:      r.NetIncome,
		Unbanked:       r.Unbanked,
	}
}
