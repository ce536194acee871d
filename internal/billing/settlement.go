package billing

import (
	"bytes"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Balance is the financial position of a single lease.
// Due is positive when the tenant owes money and negative when they hold credit.
type Balance struct {
	LeaseID  uuid.UUID
	Opening  int64
	Invoiced int64
	Funds    int64
	Due      int64
}

// Credit is the amount the tenant has overpaid, or zero.
func (b Balance) Credit() int64 {
	return max(-b.Due, 0)
}

// ComputeBalance returns opening + invoiced − funds for a lease.
func ComputeBalance(lease *Lease, invoices []*Invoice, payments []*Payment, transfers []*Transfer) Balance {
	b := Balance{
		LeaseID:  lease.ID,
		Opening:  lease.OpeningDueBalance,
		Invoiced: InvoicedTotal(invoices),
		Funds:    Funds(lease.ID, payments, transfers),
	}
	b.Due = b.Opening + b.Invoiced - b.Funds

	return b
}

// SettlementRequest holds the choices made by whoever terminates a lease.
type SettlementRequest struct {
	UseSecurityDeposit bool
	// TransferAmount is how much credit to pull from the tenant's other leases.
	// Nil means no transfer.
	TransferAmount *int64
	// EffectiveDate ends the lease early. Ignored when on or after the end date.
	EffectiveDate *time.Time
	Note          string
}

// LeaseAccount is a lease together with everything that affects its balance.
type LeaseAccount struct {
	Lease    *Lease
	Invoices []*Invoice
	Payments []*Payment
}

// SettlementInput is the already-fetched state a settlement is computed from.
type SettlementInput struct {
	Lease    *Lease
	Invoices []*Invoice
	Payments []*Payment
	// Transfers are every transfer recorded for the tenant.
	Transfers []*Transfer
	// Siblings are the tenant's other leases, used as transfer sources.
	Siblings []LeaseAccount
	Request  SettlementRequest
	Now      time.Time
}

// Settlement is the final position of a lease at termination.
type Settlement struct {
	LeaseID             uuid.UUID
	OpeningDue          int64
	Invoiced            int64
	Paid                int64
	DueBeforeTransfers  int64
	Transfers           []*Transfer
	Transferred         int64
	CurrentDue          int64
	SecurityDeposit     int64
	SecurityDepositUsed int64
	DepositRefund       int64
	// FinalSettledAmount is CurrentDue − SecurityDepositUsed: still owed when
	// positive, owed back to the tenant when negative.
	FinalSettledAmount int64
}

// ComputeSettlement nets a lease's balance against credit on the tenant's other
// leases and then against its security deposit. It performs no writes; the
// returned transfers are unsaved.
func ComputeSettlement(in SettlementInput) (*Settlement, error) {
	if in.Lease.IsTerminated() {
		return nil, ErrLeaseTerminated
	}

	bal := ComputeBalance(in.Lease, in.Invoices, in.Payments, in.Transfers)

	s := &Settlement{
		LeaseID:            in.Lease.ID,
		OpeningDue:         bal.Opening,
		Invoiced:           bal.Invoiced,
		Paid:               bal.Funds,
		DueBeforeTransfers: bal.Due,
		SecurityDeposit:    in.Lease.SecurityDeposit,
	}

	if in.Request.TransferAmount != nil {
		requested := *in.Request.TransferAmount
		if requested <= 0 {
			return nil, invalid("transfer_amount", "must be positive")
		}

		if requested > max(bal.Due, 0) {
			return nil, invalid("transfer_amount", "exceeds outstanding balance of %d", max(bal.Due, 0))
		}

		s.Transfers = planTransfers(in, requested)
		for _, t := range s.Transfers {
			s.Transferred += t.Amount
		}
	}

	s.CurrentDue = bal.Due - s.Transferred

	if in.Request.UseSecurityDeposit {
		s.SecurityDepositUsed = min(max(s.CurrentDue, 0), in.Lease.SecurityDeposit)
	}

	s.DepositRefund = s.SecurityDeposit - s.SecurityDepositUsed
	s.FinalSettledAmount = s.CurrentDue - s.SecurityDepositUsed

	return s, nil
}

// planTransfers drains sibling leases holding credit, in ascending lease ID
// order, until requested is reached. No source gives more than its credit.
func planTransfers(in SettlementInput, requested int64) []*Transfer {
	siblings := slices.Clone(in.Siblings)
	slices.SortFunc(siblings, func(a, b LeaseAccount) int {
		return bytes.Compare(a.Lease.ID[:], b.Lease.ID[:])
	})

	var transfers []*Transfer

	remaining := requested

	for _, sib := range siblings {
		if remaining == 0 {
			break
		}

		if sib.Lease.ID == in.Lease.ID || sib.Lease.TenantID != in.Lease.TenantID {
			continue
		}

		credit := ComputeBalance(sib.Lease, sib.Invoices, sib.Payments, in.Transfers).Credit()
		if credit == 0 {
			continue
		}

		take := min(credit, remaining)
		remaining -= take

		transfers = append(transfers, &Transfer{
			TenantID:      in.Lease.TenantID,
			SourceLeaseID: sib.Lease.ID,
			TargetLeaseID: in.Lease.ID,
			Amount:        take,
			TransferDate:  in.Now,
			Note:          in.Request.Note,
		})
	}

	return transfers
}
