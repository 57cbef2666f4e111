package engine

import (
	"sort"
	"time"

	"github.com/nbendourou/Money-Manager/internal/model"
)

const day = 24 * time.Hour

// filterTransactions returns the transactions matching the filter,
// sorted descending by date. The original slice is never mutated.
func filterTransactions(transactions []model.Transaction, filters model.FilterState) []model.Transaction {
	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if filters.Matches(t.Date) {
			filtered = append(filtered, t)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered
}

// bounds are the earliest and latest transaction dates of the filtered
// set. Both are zero when the set is empty.
type bounds struct {
	start time.Time
	end   time.Time
}

func (b bounds) resolved() bool {
	return !b.start.IsZero() && !b.end.IsZero()
}

// days is the inclusive day span covered by the bounds, 0 when empty.
func (b bounds) days() float64 {
	if !b.resolved() {
		return 0
	}
	return b.end.Sub(b.start).Hours()/24 + 1
}

func periodBounds(filtered []model.Transaction) bounds {
	var b bounds
	for _, t := range filtered {
		if b.start.IsZero() || t.Date.Before(b.start) {
			b.start = t.Date
		}
		if b.end.IsZero() || t.Date.After(b.end) {
			b.end = t.Date
		}
	}
	return b
}

// previousTotals infers the comparison period from the filter's category
// and sums the unfiltered ledger over it. The rules are mutually
// exclusive and evaluated in order; when none applies the totals are
// zero. The period is derived from the filter, not from the filtered
// data, except for the custom-range rule which slides the observed
// window back by its own duration.
func previousTotals(transactions []model.Transaction, filters model.FilterState, current bounds) model.PeriodTotals {
	var start, end time.Time

	switch {
	case filters.DateRange.Active():
		if !current.resolved() {
			return model.PeriodTotals{}
		}
		duration := current.end.Sub(current.start)
		end = current.start.Add(-day)
		start = end.Add(-duration)
	case filters.Year != model.AllPeriods && filters.Month != model.AllPeriods:
		// Full calendar month immediately before (year, month).
		firstOfCurrent := time.Date(filters.Year, time.Month(filters.Month), 1, 0, 0, 0, 0, time.UTC)
		start = firstOfCurrent.AddDate(0, -1, 0)
		end = firstOfCurrent.Add(-time.Second)
	case filters.Year != model.AllPeriods:
		start = time.Date(filters.Year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(filters.Year-1, time.December, 31, 23, 59, 59, 0, time.UTC)
	default:
		return model.PeriodTotals{}
	}

	var totals model.PeriodTotals
	for _, t := range transactions {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		switch t.Type {
		case model.TypeRevenue:
			totals.TotalRevenue += t.Amount
		case model.TypeExpense:
			totals.TotalExpenses += t.Amount
		case model.TypeSavings:
			totals.TotalSavings += t.Amount
		}
	}
	return totals
}
