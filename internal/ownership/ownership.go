// Package ownership splits shop income and expenses between the property's owners.
package ownership

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSole   Type = "sole"
	TypeCommon Type = "common"
)

type Allocation string

const (
	AllocationOwner  Allocation = "owner"
	AllocationCommon Allocation = "common"
)

type Owner struct {
	ID            uuid.UUID
	Name          string
	BankName      string
	AccountName   string
	AccountNumber string
	CreatedAt     time.Time
}

// Shop is a lettable unit. OwnerID is set only for solely owned shops.
type Shop struct {
	ID            uuid.UUID
	Number        string
	OwnershipType Type
	OwnerID       *uuid.UUID
	Status        string
	CreatedAt     time.Time
}

func (s *Shop) OwnedBy(ownerID uuid.UUID) bool {
	return s.OwnershipType == TypeSole && s.OwnerID != nil && *s.OwnerID == ownerID
}

type Expense struct {
	ID          uuid.UUID
	Allocation  Allocation
	OwnerID     *uuid.UUID
	Category    string
	Description string
	Amount      int64
	Date        time.Time
	CreatedAt   time.Time
}

// BankDeposit records money an owner has banked. It does not affect tenant balances.
type BankDeposit struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Amount    int64
	Date      time.Time
	Reference string
	CreatedAt time.Time
}

// Collection is rent received for a shop, one per active payment.
type Collection struct {
	PaymentID uuid.UUID
	ShopID    uuid.UUID
	Amount    int64
	Date      time.Time
}

// HeldDeposit is a security deposit still held against a shop's live lease.
type HeldDeposit struct {
	LeaseID uuid.UUID
	ShopID  uuid.UUID
	Amount  int64
}
