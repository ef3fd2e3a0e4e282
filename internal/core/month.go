package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

const monthLayout = "2006-01"

// Month is a year-month value used to restrict summaries. A month is pure
// sugar for the inclusive date range covering its first and last day; every
// month-restricted operation goes through Range and the ordinary date
// predicates.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM value.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q (want YYYY-MM)", ErrInvalidDate, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Range returns the first and last day of the month, inclusive.
func (m Month) Range() (Date, Date) {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	last := now.New(first).EndOfMonth()
	return Date{Time: first}, NewDate(last.Year(), int(last.Month()), last.Day())
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
