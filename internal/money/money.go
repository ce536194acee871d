// Package money handles amounts stored as int64 minor units (cents).
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrEmpty       = errors.New("amount is empty")
	ErrNotPositive = errors.New("amount must be positive")
	ErrNoParts     = errors.New("part count must be positive")
)

var hundred = decimal.NewFromInt(100)

// Parse parses a user-entered amount into cents.
// Format examples: "1,234.56" -> 123456, "-50" -> -5000, "10.005" -> 1001.
func Parse(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0, ErrEmpty
	}

	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.Mul(hundred).Round(0).IntPart(), nil
}

// ParsePositive is Parse with the additional requirement that the result is > 0.
func ParsePositive(s string) (int64, error) {
	cents, err := Parse(s)
	if err != nil {
		return 0, err
	}

	if cents <= 0 {
		return 0, ErrNotPositive
	}

	return cents, nil
}

// Format renders cents with thousands grouping, e.g. 123456 -> "1,234.56".
func Format(cents int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.2f", decimal.New(cents, -2).InexactFloat64())
}

// Share divides amount into parts equal shares, rounded to the nearest cent.
func Share(amount int64, parts int) (int64, error) {
	if parts <= 0 {
		return 0, ErrNoParts
	}

	return decimal.NewFromInt(amount).
		Div(decimal.NewFromInt(int64(parts))).
		Round(0).
		IntPart(), nil
}

// Split divides amount into parts pieces that sum exactly to amount.
// Every piece but the last gets the truncated even share; the last absorbs the remainder.
func Split(amount int64, parts int) ([]int64, error) {
	if parts <= 0 {
		return nil, ErrNoParts
	}

	base := amount / int64(parts)

	out := make([]int64, parts)
	for i := range out {
		out[i] = base
	}

	out[parts-1] = amount - base*int64(parts-1)

	return out, nil
}
