package billing

import (
	"time"

	"github.com/google/uuid"
)

// LeaseStatus represents the lifecycle state of a lease.
type LeaseStatus string

const (
	StatusActive       LeaseStatus = "active"
	StatusExpiringSoon LeaseStatus = "expiring_soon"
	StatusExpired      LeaseStatus = "expired"
	StatusTerminated   LeaseStatus = "terminated"
)

// Valid reports whether s is one of the known lease statuses.
func (s LeaseStatus) Valid() bool {
	switch s {
	case StatusActive, StatusExpiringSoon, StatusExpired, StatusTerminated:
		return true
	}

	return false
}

// ShopStatus is the occupancy of a shop, driven by the lease lifecycle.
type ShopStatus string

const (
	ShopVacant   ShopStatus = "vacant"
	ShopOccupied ShopStatus = "occupied"
)

// Tenant is a lessee. OpeningDueBalance is legacy debt carried from before the
// system existed and is not attached to any particular lease.
type Tenant struct {
	ID                uuid.UUID
	Name              string
	OpeningDueBalance int64
	CreatedAt         time.Time
}

// Lease links a tenant to a shop. All amounts are in cents.
type Lease struct {
	ID                  uuid.UUID
	TenantID            uuid.UUID
	ShopID              uuid.UUID
	MonthlyRent         int64
	SecurityDeposit     int64
	SecurityDepositUsed int64
	OpeningDueBalance   int64
	StartDate           time.Time
	EndDate             time.Time
	Status              LeaseStatus
	TerminatedAt        *time.Time
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

func (l *Lease) IsTerminated() bool {
	return l.Status == StatusTerminated
}

// RentAdjustment is an append-only record of a rent change.
type RentAdjustment struct {
	ID            uuid.UUID
	LeaseID       uuid.UUID
	PreviousRent  int64
	NewRent       int64
	EffectiveDate time.Time
	CreatedAt     time.Time
}

// Invoice is the rent due for one elapsed calendar month of a lease.
type Invoice struct {
	ID         uuid.UUID
	LeaseID    uuid.UUID
	Year       int
	Month      time.Month
	Amount     int64
	IsPaid     bool
	PaidAmount int64
	CreatedAt  time.Time
}

func (i *Invoice) Period() Month {
	return Month{Year: i.Year, Month: i.Month}
}

// Outstanding is the part of the invoice not yet covered by payments.
func (i *Invoice) Outstanding() int64 {
	return i.Amount - i.PaidAmount
}

// Payment is money received from a tenant against one lease.
// Deleted payments stay in storage but never count towards a balance.
type Payment struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	LeaseID       uuid.UUID
	Amount        int64
	PaymentDate   time.Time
	RentMonths    []Month
	Note          string
	IsDeleted     bool
	DeletedReason string
	DeletedAt     *time.Time
	CreatedAt     time.Time
}

// Transfer moves credit from one of a tenant's leases to another at settlement.
// It is a credit on the target lease and a debit on the source lease.
type Transfer struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	SourceLeaseID uuid.UUID
	TargetLeaseID uuid.UUID
	Amount        int64
	TransferDate  time.Time
	Note          string
	CreatedAt     time.Time
}
