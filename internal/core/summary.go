package core

// CategoryTotal is the aggregate for a single category.
type CategoryTotal struct {
	Category string
	Total    Money
	Count    int
	Average  Money
}

// Summary holds per-category totals plus a grand total, optionally
// restricted to one month. Categories with no matching expenses are omitted;
// ByCategory is ordered by descending total.
type Summary struct {
	Month      *Month
	ByCategory []CategoryTotal
	Total      Money
}

// Get returns the aggregate for the named category (case-sensitive on the
// stored, normalized name) and whether it is present.
func (s Summary) Get(category string) (CategoryTotal, bool) {
	for _, ct := range s.ByCategory {
		if ct.Category == category {
			return ct, true
		}
	}
	return CategoryTotal{}, false
}

// Empty reports whether the summary matched no expenses.
func (s Summary) Empty() bool {
	return len(s.ByCategory) == 0
}
