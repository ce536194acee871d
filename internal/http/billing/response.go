package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

type tenantResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	OpeningDueBalance int64     `json:"opening_due_balance"`
	CreatedAt         time.Time `json:"created_at"`
}

func toTenantResponse(t *billing.Tenant) tenantResponse {
	return tenantResponse{
		ID:                t.ID,
		Name:              t.Name,
		OpeningDueBalance: t.OpeningDueBalance,
		CreatedAt:         t.CreatedAt,
	}
}

type leaseResponse struct {
	ID                  uuid.UUID           `json:"id"`
	TenantID            uuid.UUID           `json:"tenant_id"`
	ShopID              uuid.UUID           `json:"shop_id"`
	MonthlyRent         int64               `json:"monthly_rent"`
	SecurityDeposit     int64               `json:"security_deposit"`
	SecurityDepositUsed int64               `json:"security_deposit_used"`
	OpeningDueBalance   int64               `json:"opening_due_balance"`
	StartDate           time.Time           `json:"start_date"`
	EndDate             *time.Time          `json:"end_date,omitempty"`
	Status              billing.LeaseStatus `json:"status"`
	TerminatedAt        *time.Time          `json:"terminated_at,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           *time.Time          `json:"updated_at,omitempty"`
}

func toLeaseResponse(l *billing.Lease) leaseResponse {
	resp := leaseResponse{
		ID:                  l.ID,
		TenantID:            l.TenantID,
		ShopID:              l.ShopID,
		MonthlyRent:         l.MonthlyRent,
		SecurityDeposit:     l.SecurityDeposit,
		SecurityDepositUsed: l.SecurityDepositUsed,
		OpeningDueBalance:   l.OpeningDueBalance,
		StartDate:           l.StartDate,
		Status:              l.Status,
		TerminatedAt:        l.TerminatedAt,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}

	// Open-ended leases have no end date.
	if !l.EndDate.IsZero() {
		resp.EndDate = new(l.EndDate)
	}

	return resp
}

func toLeaseResponseList(leases []*billing.Lease) []leaseResponse {
	resp := make([]leaseResponse, len(leases))
	for i, l := range leases {
		resp[i] = toLeaseResponse(l)
	}

	return resp
}

type adjustmentResponse struct {
	ID            uuid.UUID `json:"id"`
	LeaseID       uuid.UUID `json:"lease_id"`
	PreviousRent  int64     `json:"previous_rent"`
	NewRent       int64     `json:"new_rent"`
	EffectiveDate time.Time `json:"effective_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAdjustmentResponse(a *billing.RentAdjustment) adjustmentResponse {
	return adjustmentResponse{
		ID:            a.ID,
		LeaseID:       a.LeaseID,
		PreviousRent:  a.PreviousRent,
		NewRent:       a.NewRent,
		EffectiveDate: a.EffectiveDate,
		CreatedAt:     a.CreatedAt,
	}
}

type invoiceResponse struct {
	ID         uuid.UUID     `json:"id"`
	LeaseID    uuid.UUID     `json:"lease_id"`
	Period     billing.Month `json:"period"`
	Amount     int64         `json:"amount"`
	PaidAmount int64         `json:"paid_amount"`
	IsPaid     bool          `json:"is_paid"`
}

func toInvoiceResponse(inv *billing.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:         inv.ID,
		LeaseID:    inv.LeaseID,
		Period:     inv.Period(),
		Amount:     inv.Amount,
		PaidAmount: inv.PaidAmount,
		IsPaid:     inv.IsPaid,
	}
}

type rentResponse struct {
	LeaseID uuid.UUID     `json:"lease_id"`
	Month   billing.Month `json:"month"`
	Rent    int64         `json:"rent"`
}

type paymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	LeaseID       uuid.UUID       `json:"lease_id"`
	Amount        int64           `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	RentMonths    []billing.Month `json:"rent_months,omitempty"`
	Note          string          `json:"note,omitempty"`
	IsDeleted     bool            `json:"is_deleted"`
	DeletedReason string          `json:"deleted_reason,omitempty"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toPaymentResponse(p *billing.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		LeaseID:       p.LeaseID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		RentMonths:    p.RentMonths,
		Note:          p.Note,
		IsDeleted:     p.IsDeleted,
		DeletedReason: p.DeletedReason,
		DeletedAt:     p.DeletedAt,
		CreatedAt:     p.CreatedAt,
	}
}

type transferResponse struct {
	ID            uuid.UUID `json:"id,omitzero"`
	SourceLeaseID uuid.UUID `json:"source_lease_id"`
	TargetLeaseID uuid.UUID `json:"target_lease_id"`
	Amount        int64     `json:"amount"`
	TransferDate  time.Time `json:"transfer_date"`
	Note          string    `json:"note,omitempty"`
}

type settlementResponse struct {
	LeaseID             uuid.UUID          `json:"lease_id"`
	OpeningDue          int64              `json:"opening_due"`
	Invoiced            int64              `json:"invoiced"`
	Paid                int64              `json:"paid"`
	DueBeforeTransfers  int64              `json:"due_before_transfers"`
	Transfers           []transferResponse `json:"transfers"`
	Transferred         int64              `json:"transferred"`
	CurrentDue          int64              `json:"current_due"`
	SecurityDeposit     int64              `json:"security_deposit"`
	SecurityDepositUsed int64              `json:"security_deposit_used"`
	DepositRefund       int64              `json:"deposit_refund"`
	FinalSettledAmount  int64              `json:"final_settled_amount"`
}

func toSettlementResponse(s *billing.Settlement) settlementResponse {
	transfers := make([]transferResponse, len(s.Transfers))
	for i, t := range s.Transfers {
		transfers[i] = transferResponse{
			ID:            t.ID,
			SourceLeaseID: t.SourceLeaseID,
			TargetLeaseID: t.TargetLeaseID,
			Amount:        t.Amount,
			TransferDate:  t.TransferDate,
			Note:          t.Note,
		}
	}

	return settlementResponse{
		LeaseID:             s.LeaseID,
		OpeningDue:          s.OpeningDue,
		Invoiced:            s.Invoiced,
		Paid:                s.Paid,
		DueBeforeTransfers:  s.DueBeforeTransfers,
		Transfers:           transfers,
		Transferred:         s.Transferred,
		CurrentDue:          s.CurrentDue,
		SecurityDeposit:     s.SecurityDeposit,
		SecurityDepositUsed: s.SecurityDepositUsed,
		DepositRefund:       s.DepositRefund,
		FinalSettledAmount:  s.FinalSettledAmount,
	}
}

type balanceResponse struct {
	LeaseID  uuid.UUID `json:"lease_id"`
	Opening  int64     `json:"opening"`
	Invoiced int64     `json:"invoiced"`
	Funds    int64     `json:"funds"`
	Due      int64     `json:"due"`
	Credit   int64     `json:"credit"`
}

func toBalanceResponse(b billing.Balance) balanceResponse {
	return balanceResponse{
		LeaseID:  b.LeaseID,
		Opening:  b.Opening,
		Invoiced: b.Invoiced,
		Funds:    b.Funds,
		Due:      b.Due,
		Credit:   b.Credit(),
	}
}

type tenantBalanceResponse struct {
	TenantID uuid.UUID         `json:"tenant_id"`
	Opening  int64             `json:"opening"`
	Leases   []balanceResponse `json:"leases"`
	Due      int64             `json:"due"`
}

func toTenantBalanceResponse(tb *billing.TenantBalance) tenantBalanceResponse {
	leases := make([]balanceResponse, len(tb.Leases))
	for i, b := range tb.Leases {
		leases[i] = toBalanceResponse(b)
	}

	return tenantBalanceResponse{
		TenantID: tb.TenantID,
		Opening:  tb.Opening,
		Leases:   leases,
		Due:      tb.Due,
	}
}

type ledgerRowResponse struct {
	Date        time.Time         `json:"date"`
	Kind        billing.EntryKind `json:"kind"`
	LeaseID     uuid.UUID         `json:"lease_id,omitzero"`
	RefID       uuid.UUID         `json:"ref_id,omitzero"`
	Period      *billing.Month    `json:"period,omitempty"`
	Description string            `json:"description"`
	Debit       int64             `json:"debit"`
	Credit      int64             `json:"credit"`
	Balance     int64             `json:"balance"`
}

type ledgerResponse struct {
	TenantID       uuid.UUID           `json:"tenant_id"`
	LeaseID        *uuid.UUID          `json:"lease_id,omitempty"`
	Rows           []ledgerRowResponse `json:"rows"`
	OpeningBalance int64               `json:"opening_balance"`
	ClosingBalance int64               `json:"closing_balance"`
}

func toLedgerResponse(l *billing.Ledger) ledgerResponse {
	rows := make([]ledgerRowResponse, len(l.Rows))
	for i, row := range l.Rows {
		rows[i] = ledgerRowResponse{
			Date:        row.Date,
			Kind:        row.Kind,
			LeaseID:     row.LeaseID,
			RefID:       row.RefID,
			Period:      row.Period,
			Description: row.Description,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
	}

	return ledgerResponse{
		TenantID:       l.TenantID,
		LeaseID:        l.LeaseID,
		Rows:           rows,
		OpeningBalance: l.OpeningBalance,
		ClosingBalance: l.ClosingBalance,
	}
}
