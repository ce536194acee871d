package ownership

import (
	"errors"

	"github.com/MrJamesThe3rd/rentroll/internal/money"
)

// AllocateCommonShare is one owner's share of a commonly owned amount,
// rounded to the nearest cent.
func AllocateCommonShare(full int64, ownerCount int) (int64, error) {
	share, err := money.Share(full, ownerCount)
	if errors.Is(err, money.ErrNoParts) {
		return 0, ErrNoOwners
	}

	return share, err
}

// SplitCommon divides full between ownerCount owners so the parts add up to
// full exactly. The last owner receives the remainder.
func SplitCommon(full int64, ownerCount int) ([]int64, error) {
	parts, err := money.Split(full, ownerCount)
	if errors.Is(err, money.ErrNoParts) {
		return nil, ErrNoOwners
	}

	return parts, err
}
