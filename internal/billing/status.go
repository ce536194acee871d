package billing

import "time"

// DefaultExpiringSoonWindow is how close to its end date a lease is flagged expiring_soon.
const DefaultExpiringSoonWindow = 30 * 24 * time.Hour

// DeriveStatus computes a lease's status from its end date. Terminated is
// permanent. A lease is expired once its end date has fully passed.
func DeriveStatus(lease *Lease, now time.Time, window time.Duration) LeaseStatus {
	if lease.IsTerminated() {
		return StatusTerminated
	}

	if lease.EndDate.IsZero() {
		return StatusActive
	}

	endOfTerm := lease.EndDate.AddDate(0, 0, 1)
	if !now.Before(endOfTerm) {
		return StatusExpired
	}

	if lease.EndDate.Sub(now) <= window {
		return StatusExpiringSoon
	}

	return StatusActive
}
