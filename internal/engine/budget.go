package engine

import (
	"sort"

	"github.com/nbendourou/Money-Manager/internal/model"
)

// othersLabel is the catch-all bucket name. It is part of the data
// contract consumed by the chart layer and the exports, not a display
// concern.
const othersLabel = "Autres"

// daysPerYear prorates annual budgets to the filter period, accounting
// for leap years.
const daysPerYear = 365.25

// budgetShareThreshold is the cumulative prorated-budget share that
// selects the "main" chart categories.
const budgetShareThreshold = 0.8

// reconcileBudget builds one row per category in the union of the budget
// keys and the expense categories observed in the filtered set, sorted
// descending by actual spend. Annual budgets are prorated to the filter
// period's day span; a category absent from either side contributes 0.
func reconcileBudget(expenses []model.CategoryPoint, budget model.Budget, periodDays float64) []model.BudgetRow {
	actuals := make(map[string]float64, len(expenses))
	for _, p := range expenses {
		actuals[p.Name] = p.Value
	}

	// Budget keys in sorted order first, then observed categories not in
	// the budget, so the pre-sort order is deterministic.
	categories := make([]string, 0, len(budget)+len(expenses))
	for category := range budget {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, p := range expenses {
		if _, ok := budget[p.Name]; !ok {
			categories = append(categories, p.Name)
		}
	}

	factor := 0.0
	if periodDays > 0 {
		factor = periodDays / daysPerYear
	}

	rows := make([]model.BudgetRow, 0, len(categories))
	for _, category := range categories {
		actual := actuals[category]
		prorated := budget[category] * factor
		rows = append(rows, model.BudgetRow{
			Category:       category,
			ActualAmount:   actual,
			ProratedBudget: prorated,
			Difference:     prorated - actual,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ActualAmount > rows[j].ActualAmount })
	return rows
}

// bucketCategories builds the chart-ready expense distribution: the
// categories carrying the bulk of the budget keep their own slice, the
// rest collapse into "Autres". Selection is driven by prorated budget
// weight while the displayed values are the actual expenses, so the
// chart highlights what was planned to matter while showing what was
// really spent.
func bucketCategories(expenses []model.CategoryPoint, summary []model.BudgetRow) []model.CategoryPoint {
	var totalProrated float64
	for _, row := range summary {
		totalProrated += row.ProratedBudget
	}

	// Without a budget for the period, fall back to a plain top-6 chart.
	if totalProrated <= 0 {
		if len(expenses) <= 7 {
			return expenses
		}
		top := make([]model.CategoryPoint, 6, 7)
		copy(top, expenses[:6])
		var others float64
		for _, p := range expenses[6:] {
			others += p.Value
		}
		if others > 0 {
			top = append(top, model.CategoryPoint{Name: othersLabel, Value: others})
		}
		return top
	}

	// Greedy prefix over rows sorted by budget weight: keep absorbing
	// categories until they cover the threshold share.
	byBudget := make([]model.BudgetRow, len(summary))
	copy(byBudget, summary)
	sort.SliceStable(byBudget, func(i, j int) bool {
		return byBudget[i].ProratedBudget > byBudget[j].ProratedBudget
	})

	threshold := totalProrated * budgetShareThreshold
	main := make(map[string]bool)
	var cumulative float64
	for _, row := range byBudget {
		main[row.Category] = true
		cumulative += row.ProratedBudget
		if cumulative >= threshold {
			break
		}
	}

	chart := make([]model.CategoryPoint, 0, len(main)+1)
	var others float64
	for _, p := range expenses {
		if main[p.Name] {
			chart = append(chart, p)
		} else {
			others += p.Value
		}
	}
	if others > 0 {
		chart = append(chart, model.CategoryPoint{Name: othersLabel, Value: others})
	}
	return chart
}
