package billing

import (
	"cmp"
	"slices"
	"time"
)

// ElapsedMonths returns the billable months of a lease as of now: from the
// start month through the earlier of the end month and the current month.
func ElapsedMonths(lease *Lease, now time.Time) []Month {
	first := MonthOf(lease.StartDate)

	last := MonthOf(now)
	if !lease.EndDate.IsZero() {
		if end := MonthOf(lease.EndDate); end.Before(last) {
			last = end
		}
	}

	return MonthsBetween(first, last)
}

// BuildInvoices materialises one unpaid invoice per elapsed month, each priced
// with the rent in force for that month. Future months are never included.
func BuildInvoices(lease *Lease, adjustments []*RentAdjustment, now time.Time) []*Invoice {
	months := ElapsedMonths(lease, now)

	invoices := make([]*Invoice, 0, len(months))
	for _, m := range months {
		invoices = append(invoices, &Invoice{
			LeaseID: lease.ID,
			Year:    m.Year,
			Month:   m.Month,
			Amount:  ResolveRent(lease, adjustments, m),
		})
	}

	return invoices
}

// SortInvoices orders invoices oldest first, in place.
func SortInvoices(invoices []*Invoice) {
	slices.SortFunc(invoices, func(a, b *Invoice) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month))
	})
}

// InvoicedTotal sums the amounts of invoices.
func InvoicedTotal(invoices []*Invoice) int64 {
	var total int64
	for _, inv := range invoices {
		total += inv.Amount
	}

	return total
}
