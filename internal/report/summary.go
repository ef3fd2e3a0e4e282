package report

import (
	"sort"

	"spendtrack/internal/core"
)

// Summarize groups col by category and sums amounts per group. When month is
// non-nil the collection is first restricted to that month through the same
// date predicates Filter uses, so month and date-range filtering share one
// code path.
func Summarize(col core.Collection, month *core.Month) core.Summary {
	s := core.Summary{Month: month}

	if month != nil {
		from, to := month.Range()
		col = Filter(col, Query{From: from, To: to})
	}

	totals := make(map[string]*core.CategoryTotal)
	for _, e := range col {
		ct, ok := totals[e.Category]
		if !ok {
			ct = &core.CategoryTotal{Category: e.Category}
			totals[e.Category] = ct
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++
		s.Total = s.Total.Add(e.Amount)
	}

	s.ByCategory = make([]core.CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		ct.Average = ct.Total.Div(int64(ct.Count))
		s.ByCategory = append(s.ByCategory, *ct)
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if a.Total.Cents != b.Total.Cents {
			return a.Total.Cents > b.Total.Cents
		}
		return a.Category < b.Category
	})
	return s
}
