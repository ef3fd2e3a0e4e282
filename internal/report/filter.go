// Package report provides read-only views over a loaded expense collection:
// filtering, per-category summaries and CSV export.
package report

import (
	"sort"
	"strings"

	"spendtrack/internal/core"
)

// Query holds the optional filter predicates. All supplied predicates are
// ANDed; the zero Query matches everything.
type Query struct {
	Category string    // case-insensitive exact match
	From     core.Date // inclusive lower bound, zero means unbounded
	To       core.Date // inclusive upper bound, zero means unbounded
	Limit    int       // truncate to this many entries when > 0
}

// Filter returns the subset of col matching q, preserving insertion order.
func Filter(col core.Collection, q Query) core.Collection {
	out := make(core.Collection, 0, len(col))
	for _, e := range col {
		if !matches(e, q) {
			continue
		}
		out = append(out, e)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out
}

func matches(e core.Expense, q Query) bool {
	if q.Category != "" && !e.InCategory(q.Category) {
		return false
	}
	if !q.From.IsZero() && e.Date.Before(q.From) {
		return false
	}
	if !q.To.IsZero() && e.Date.After(q.To) {
		return false
	}
	return true
}

// Categories returns the sorted unique category names present in col.
func Categories(col core.Collection) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(col))
	for _, e := range col {
		name := strings.ToLower(strings.TrimSpace(e.Category))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
