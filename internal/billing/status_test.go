package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		end        time.Time
		terminated bool
		want       billing.LeaseStatus
	}{
		{name: "OpenEnded", want: billing.StatusActive},
		{name: "FarAway", end: date(2024, time.December, 31), want: billing.StatusActive},
		{name: "WithinWindow", end: date(2024, time.July, 1), want: billing.StatusExpiringSoon},
		{name: "EndsToday", end: date(2024, time.June, 15), want: billing.StatusExpiringSoon},
		{name: "EndedYesterday", end: date(2024, time.June, 14), want: billing.StatusExpired},
		{name: "TerminatedIsPermanent", end: date(2024, time.December, 31), terminated: true, want: billing.StatusTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lease := newLease(10000, date(2024, time.January, 1), tt.end)
			if tt.terminated {
				lease.Status = billing.StatusTerminated
			}

			assert.Equal(t, tt.want, billing.DeriveStatus(lease, now, billing.DefaultExpiringSoonWindow))
		})
	}
}
