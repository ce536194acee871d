package billing

import (
	"cmp"
	"slices"
)

// sortAdjustments returns a copy of adjustments ordered by effective date.
// Adjustments sharing an effective date keep their recording order.
func sortAdjustments(adjustments []*RentAdjustment) []*RentAdjustment {
	sorted := slices.Clone(adjustments)
	slices.SortStableFunc(sorted, func(a, b *RentAdjustment) int {
		if c := a.EffectiveDate.Compare(b.EffectiveDate); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return sorted
}

// InitialRent is the rent agreed when the lease was signed: the previous rent
// of the earliest adjustment, or the lease's monthly rent if it was never adjusted.
func InitialRent(lease *Lease, adjustments []*RentAdjustment) int64 {
	sorted := sortAdjustments(adjustments)
	if len(sorted) == 0 {
		return lease.MonthlyRent
	}

	return sorted[0].PreviousRent
}

// ResolveRent returns the rent in force for month m.
// An adjustment applies to every month from the month containing its effective date onward.
func ResolveRent(lease *Lease, adjustments []*RentAdjustment, m Month) int64 {
	sorted := sortAdjustments(adjustments)

	rent := lease.MonthlyRent
	if len(sorted) > 0 {
		rent = sorted[0].PreviousRent
	}

	for _, a := range sorted {
		if MonthOf(a.EffectiveDate).After(m) {
			break
		}

		rent = a.NewRent
	}

	return rent
}

// CurrentRent is the rent in force after every recorded adjustment.
func CurrentRent(lease *Lease, adjustments []*RentAdjustment) int64 {
	if len(adjustments) == 0 {
		return lease.MonthlyRent
	}

	latest := slices.MaxFunc(adjustments, func(a, b *RentAdjustment) int {
		return cmp.Or(a.EffectiveDate.Compare(b.EffectiveDate), a.CreatedAt.Compare(b.CreatedAt))
	})

	return latest.NewRent
}
