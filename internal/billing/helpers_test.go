package billing_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func month(y int, m time.Month) billing.Month {
	return billing.Month{Year: y, Month: m}
}

// orderedID returns a UUID whose byte order follows n.
func orderedID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n

	return id
}

func newLease(rent int64, start, end time.Time) *billing.Lease {
	return &billing.Lease{
		ID:          uuid.New(),
		TenantID:    uuid.New(),
		ShopID:      uuid.New(),
		MonthlyRent: rent,
		StartDate:   start,
		EndDate:     end,
		Status:      billing.StatusActive,
	}
}

func invoices(leaseID uuid.UUID, first billing.Month, amounts ...int64) []*billing.Invoice {
	out := make([]*billing.Invoice, 0, len(amounts))

	m := first
	for _, amt := range amounts {
		out = append(out, &billing.Invoice{ID: uuid.New(), LeaseID: leaseID, Year: m.Year, Month: m.Month, Amount: amt})
		m = m.Next()
	}

	return out
}

func payment(lease *billing.Lease, amount int64, on time.Time) *billing.Payment {
	return &billing.Payment{
		ID:          uuid.New(),
		TenantID:    lease.TenantID,
		LeaseID:     lease.ID,
		Amount:      amount,
		PaymentDate: on,
	}
}

func paidAmounts(invs []*billing.Invoice) []int64 {
	out := make([]int64, len(invs))
	for i, inv := range invs {
		out[i] = inv.PaidAmount
	}

	return out
}
