package billing

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/money"
)

// EntryKind classifies a ledger row.
type EntryKind string

const (
	EntryOpening     EntryKind = "opening"
	EntryRent        EntryKind = "rent"
	EntryTransferIn  EntryKind = "transfer_in"
	EntryTransferOut EntryKind = "transfer_out"
	EntryPayment     EntryKind = "payment"
)

// rank orders rows sharing a date: charges before the money that settles them.
func (k EntryKind) rank() int {
	switch k {
	case EntryOpening:
		return 0
	case EntryRent:
		return 1
	case EntryTransferOut:
		return 2
	case EntryTransferIn:
		return 3
	default:
		return 4
	}
}

// LedgerRow is one line of a statement. Exactly one of Debit and Credit is set.
type LedgerRow struct {
	Date        time.Time
	Kind        EntryKind
	LeaseID     uuid.UUID
	RefID       uuid.UUID
	Period      *Month
	Description string
	Debit       int64
	Credit      int64
	Balance     int64
}

// Ledger is a chronological running-balance statement for a tenant or a lease.
type Ledger struct {
	TenantID       uuid.UUID
	LeaseID        *uuid.UUID
	Rows           []LedgerRow
	OpeningBalance int64
	ClosingBalance int64
	// CurrentDue is the balance computed independently of the rows.
	CurrentDue int64
}

// LedgerInput is the already-fetched state a ledger is built from. Only rows
// belonging to Leases are emitted; TenantOpening is the legacy tenant-wide
// opening balance and should be zero for a single-lease statement.
type LedgerInput struct {
	TenantID      uuid.UUID
	TenantOpening int64
	Leases        []*Lease
	Invoices      []*Invoice
	Payments      []*Payment
	Transfers     []*Transfer
}

// BuildLedger merges rent charges, payments and transfers into one statement.
// It returns ErrInconsistent if the closing balance does not equal the current
// due computed from the same data.
func BuildLedger(in LedgerInput) (*Ledger, error) {
	leases := make(map[uuid.UUID]*Lease, len(in.Leases))
	for _, l := range in.Leases {
		leases[l.ID] = l
	}

	ledger := &Ledger{TenantID: in.TenantID}
	if len(in.Leases) == 1 {
		ledger.LeaseID = &in.Leases[0].ID
	}

	openings := openingRows(in)

	var events []LedgerRow

	byLease := make(map[uuid.UUID][]*Invoice)

	for _, inv := range in.Invoices {
		if _, ok := leases[inv.LeaseID]; !ok {
			continue
		}

		byLease[inv.LeaseID] = append(byLease[inv.LeaseID], inv)

		period := inv.Period()
		events = append(events, LedgerRow{
			Date:        period.FirstDay(),
			Kind:        EntryRent,
			LeaseID:     inv.LeaseID,
			RefID:       inv.ID,
			Period:      &period,
			Description: "Rent for " + period.Label(),
			Debit:       inv.Amount,
		})
	}

	for _, p := range in.Payments {
		if p.IsDeleted {
			continue
		}

		if _, ok := leases[p.LeaseID]; !ok {
			continue
		}

		rows, err := paymentRows(p)
		if err != nil {
			return nil, err
		}

		events = append(events, rows...)
	}

	for _, t := range in.Transfers {
		if _, ok := leases[t.TargetLeaseID]; ok {
			events = append(events, LedgerRow{
				Date:        t.TransferDate,
				Kind:        EntryTransferIn,
				LeaseID:     t.TargetLeaseID,
				RefID:       t.ID,
				Description: "Credit transferred from another lease",
				Credit:      t.Amount,
			})
		}

		if _, ok := leases[t.SourceLeaseID]; ok {
			events = append(events, LedgerRow{
				Date:        t.TransferDate,
				Kind:        EntryTransferOut,
				LeaseID:     t.SourceLeaseID,
				RefID:       t.ID,
				Description: "Credit transferred to another lease",
				Debit:       t.Amount,
			})
		}
	}

	slices.SortStableFunc(events, func(a, b LedgerRow) int {
		return cmp.Or(a.Date.Compare(b.Date), cmp.Compare(a.Kind.rank(), b.Kind.rank()))
	})

	var balance int64

	for _, row := range openings {
		balance += row.Debit - row.Credit
		row.Balance = balance
		ledger.Rows = append(ledger.Rows, row)
	}

	ledger.OpeningBalance = balance

	for _, row := range events {
		balance += row.Debit - row.Credit
		row.Balance = balance
		ledger.Rows = append(ledger.Rows, row)
	}

	ledger.ClosingBalance = balance

	ledger.CurrentDue = in.TenantOpening
	for _, l := range in.Leases {
		ledger.CurrentDue += ComputeBalance(l, byLease[l.ID], in.Payments, in.Transfers).Due
	}

	if ledger.ClosingBalance != ledger.CurrentDue {
		return ledger, fmt.Errorf("closing balance %d, current due %d: %w",
			ledger.ClosingBalance, ledger.CurrentDue, ErrInconsistent)
	}

	return ledger, nil
}

func openingRows(in LedgerInput) []LedgerRow {
	var rows []LedgerRow

	if in.TenantOpening != 0 {
		var earliest time.Time
		for _, l := range in.Leases {
			if earliest.IsZero() || l.StartDate.Before(earliest) {
				earliest = l.StartDate
			}
		}

		rows = append(rows, openingRow(earliest, uuid.Nil, "Opening balance", in.TenantOpening))
	}

	sorted := slices.Clone(in.Leases)
	slices.SortFunc(sorted, func(a, b *Lease) int { return a.StartDate.Compare(b.StartDate) })

	for _, l := range sorted {
		if l.OpeningDueBalance == 0 {
			continue
		}

		rows = append(rows, openingRow(l.StartDate, l.ID, "Opening balance for lease", l.OpeningDueBalance))
	}

	return rows
}

func openingRow(date time.Time, leaseID uuid.UUID, desc string, amount int64) LedgerRow {
	row := LedgerRow{Date: date, Kind: EntryOpening, LeaseID: leaseID, Description: desc}
	if amount > 0 {
		row.Debit = amount
	} else {
		row.Credit = -amount
	}

	return row
}

// paymentRows turns a payment into ledger rows. A payment naming rent months
// becomes one row per month with the amount split evenly; the last month
// absorbs the remainder so the rows add back up to the payment.
func paymentRows(p *Payment) ([]LedgerRow, error) {
	if len(p.RentMonths) == 0 {
		return []LedgerRow{{
			Date:        p.PaymentDate,
			Kind:        EntryPayment,
			LeaseID:     p.LeaseID,
			RefID:       p.ID,
			Description: "Payment received",
			Credit:      p.Amount,
		}}, nil
	}

	parts, err := money.Split(p.Amount, len(p.RentMonths))
	if err != nil {
		return nil, err
	}

	rows := make([]LedgerRow, 0, len(p.RentMonths))
	for i, m := range p.RentMonths {
		period := m
		rows = append(rows, LedgerRow{
			Date:        period.FirstDay(),
			Kind:        EntryPayment,
			LeaseID:     p.LeaseID,
			RefID:       p.ID,
			Period:      &period,
			Description: "Payment for " + period.Label(),
			Credit:      parts[i],
		})
	}

	return rows, nil
}
