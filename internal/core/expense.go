package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Sentinel errors form the failure taxonomy for the whole tool. Specific
// validation errors wrap ErrInvalidInput so callers can classify with
// errors.Is without matching message text.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("expense not found")
	ErrCorruptData  = errors.New("corrupt expense data")

	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	ErrInvalidAmount  = fmt.Errorf("%w: invalid amount", ErrInvalidInput)
	ErrEmptyCategory  = fmt.Errorf("%w: empty category", ErrInvalidInput)
	ErrInvalidDate    = fmt.Errorf("%w: invalid date", ErrInvalidInput)
)

type (
	// Date is a calendar date with day precision. The zero value is "no date".
	Date struct {
		time.Time
	}

	// Expense is a single recorded transaction.
	Expense struct {
		ID          string    `json:"id"`
		Amount      Money     `json:"amount"`
		Category    string    `json:"category"`
		Description string    `json:"description,omitempty"`
		Date        Date      `json:"date"`
		CreatedAt   time.Time `json:"created_at"`
	}

	// Collection is the in-memory ordered set of all expenses for one
	// invocation. Order is insertion order and is preserved by every
	// operation that returns a Collection.
	Collection []Expense
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("%w: date cannot be zero", ErrInvalidDate)
	}
	return nil
}

// Before reports whether d falls before other (day precision).
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls after other (day precision).
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrInvalidDate)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Normalize trims free-text fields and lowercases the category so that
// persisted data matches what the case-insensitive filters expect.
func (e Expense) Normalize() Expense {
	e.Category = strings.ToLower(strings.TrimSpace(e.Category))
	e.Description = strings.TrimSpace(e.Description)
	return e
}

func (e Expense) Validate() error {
	if e.Amount.Cents < 0 {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	return nil
}

// InCategory reports whether the expense belongs to the named category,
// matching case-insensitively.
func (e Expense) InCategory(category string) bool {
	return strings.EqualFold(strings.TrimSpace(category), e.Category)
}

// Contains reports whether the collection holds an expense with the given id.
func (c Collection) Contains(id string) bool {
	for _, e := range c {
		if e.ID == id {
			return true
		}
	}
	return false
}
