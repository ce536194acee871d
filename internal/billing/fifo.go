package billing

import (
	"github.com/google/uuid"
)

// Funds returns what a lease has available to cover its invoices: the sum of
// its active payments plus transfers received, minus transfers sent elsewhere.
func Funds(leaseID uuid.UUID, payments []*Payment, transfers []*Transfer) int64 {
	var total int64

	for _, p := range payments {
		if p.IsDeleted || p.LeaseID != leaseID {
			continue
		}

		total += p.Amount
	}

	for _, t := range transfers {
		if t.TargetLeaseID == leaseID {
			total += t.Amount
		}

		if t.SourceLeaseID == leaseID {
			total -= t.Amount
		}
	}

	return total
}

// Allocation summarises a FIFO run over a lease's invoices.
type Allocation struct {
	Funds     int64
	Allocated int64
	// Unapplied is money left over once every invoice is covered.
	Unapplied int64
	// Changed holds the invoices whose paid state differs from before the run.
	Changed []*Invoice
}

// Allocate applies funds to invoices oldest first. Each invoice is either fully
// paid, partially covered by what remains, or untouched. Invoices are sorted in
// place and their IsPaid/PaidAmount fields overwritten, so running it twice with
// the same funds changes nothing the second time.
func Allocate(invoices []*Invoice, funds int64) Allocation {
	SortInvoices(invoices)

	alloc := Allocation{Funds: funds}
	remaining := funds

	for _, inv := range invoices {
		wasPaid, hadPaid := inv.IsPaid, inv.PaidAmount

		switch {
		case remaining >= inv.Amount:
			inv.IsPaid = true
			inv.PaidAmount = inv.Amount
			remaining -= inv.Amount
		case remaining > 0:
			inv.IsPaid = false
			inv.PaidAmount = remaining
			remaining = 0
		default:
			inv.IsPaid = false
			inv.PaidAmount = 0
		}

		alloc.Allocated += inv.PaidAmount

		if inv.IsPaid != wasPaid || inv.PaidAmount != hadPaid {
			alloc.Changed = append(alloc.Changed, inv)
		}
	}

	if remaining > 0 {
		alloc.Unapplied = remaining
	}

	return alloc
}
