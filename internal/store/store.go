// Package store holds the persistence port for the expense collection and
// the collection mutation helpers shared by every backend.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"spendtrack/internal/core"
)

// Store is the persistence port. Every invocation loads the whole
// collection, mutates it in memory and saves it back as one unit;
// last writer wins.
type Store interface {
	// Load reads the entire collection. A missing storage location is
	// first-run behavior and yields an empty collection, not an error.
	Load(ctx context.Context) (core.Collection, error)
	// Save atomically replaces storage with the full collection.
	Save(ctx context.Context, col core.Collection) error
	Close() error
}

// IDFunc produces expense identifiers. It is injectable so tests can pin
// the generation strategy.
type IDFunc func() string

// ShortID returns an 8-character token cut from a v4 UUID.
func ShortID() string {
	return uuid.NewString()[:8]
}

// maxIDAttempts bounds collision retries during Add.
const maxIDAttempts = 10

// AddInput carries the user-supplied fields for a new expense.
type AddInput struct {
	Amount      core.Money
	Category    string
	Description string
	Date        core.Date // zero value means today
}

// Add validates the input, assigns a fresh id absent from col and returns
// the grown collection together with the new expense. On any failure the
// original collection is returned unchanged.
func Add(col core.Collection, in AddInput, newID IDFunc) (core.Collection, core.Expense, error) {
	if newID == nil {
		newID = ShortID
	}
	date := in.Date
	if date.IsZero() {
		date = core.Today()
	}
	e := core.Expense{
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}.Normalize()
	if err := e.Validate(); err != nil {
		return col, core.Expense{}, err
	}

	for i := 0; i < maxIDAttempts; i++ {
		id := newID()
		if id == "" || col.Contains(id) {
			continue
		}
		e.ID = id
		return append(col, e), e, nil
	}
	return col, core.Expense{}, fmt.Errorf("generate expense id: no unique id after %d attempts", maxIDAttempts)
}

// Delete removes the expense with the given id. The collection is returned
// unchanged alongside core.ErrNotFound when the id does not exist.
func Delete(col core.Collection, id string) (core.Collection, error) {
	for i, e := range col {
		if e.ID == id {
			out := make(core.Collection, 0, len(col)-1)
			out = append(out, col[:i]...)
			out = append(out, col[i+1:]...)
			return out, nil
		}
	}
	return col, fmt.Errorf("%w: %s", core.ErrNotFound, id)
}

// Find returns the expense with the given id, if present.
func Find(col core.Collection, id string) (core.Expense, bool) {
	for _, e := range col {
		if e.ID == id {
			return e, true
		}
	}
	return core.Expense{}, false
}
