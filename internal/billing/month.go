package billing

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month is a calendar month, the billing period of an invoice.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("parsing month %q: %w", s, err)
	}

	return MonthOf(t), nil
}

// FirstDay returns midnight UTC on the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Before(o Month) bool {
	return m.index() < o.index()
}

func (m Month) After(o Month) bool {
	return m.index() > o.index()
}

func (m Month) Next() Month {
	return MonthOf(m.FirstDay().AddDate(0, 1, 0))
}

func (m Month) String() string {
	return m.FirstDay().Format(monthLayout)
}

// Label is the human form used in ledger descriptions, e.g. "March 2024".
func (m Month) Label() string {
	return m.FirstDay().Format("January 2006")
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	parsed, err := ParseMonth(string(b))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

func (m Month) index() int {
	return m.Year*12 + int(m.Month) - 1
}

// MonthsBetween returns every month from first through last inclusive.
// It returns nil when first is after last.
func MonthsBetween(first, last Month) []Month {
	if first.After(last) {
		return nil
	}

	months := make([]Month, 0, last.index()-first.index()+1)
	for m := first; !m.After(last); m = m.Next() {
		months = append(months, m)
	}

	return months
}
