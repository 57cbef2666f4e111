// Package engine derives every dashboard aggregate from the raw ledger,
// the annual budget and the active filter. All computation is pure and
// synchronous: the same inputs always produce the same View, and the
// engine performs no I/O.
package engine

import (
	"fmt"
	"math"

	"github.com/nbendourou/Money-Manager/internal/model"
)

// View is the full set of derived collections consumed by the dashboard,
// the charts and the exporters.
type View struct {
	FilteredTransactions    []model.Transaction  // sorted descending by date
	Kpis                    model.Kpis
	PreviousKpis            model.PeriodTotals
	MonthlyChartData        []model.MonthlyPoint // ascending YYYY-MM
	CategoryChartData       []model.CategoryPoint
	RevenueByCategoryData   []model.CategoryPoint // top 7
	SavingsDistributionData []model.CategoryPoint
	ExpenseSummaryData      []model.BudgetRow // descending by actual amount
	FilterPeriod            model.FilterPeriod
	ExpenseCategories       []string
	RevenueCategories       []string
	SavingsCategories       []string
}

// Compute runs the full derivation pipeline. It returns an error only on
// a contract violation (negative or non-finite amount, zero date): such
// inputs indicate a bug in the ingestion layer, not a recoverable state.
func Compute(transactions []model.Transaction, budget model.Budget, filters model.FilterState) (*View, error) {
	if err := validate(transactions); err != nil {
		return nil, err
	}

	filtered := filterTransactions(transactions, filters)
	bounds := periodBounds(filtered)
	period := model.FilterPeriod{Days: bounds.days()}

	expenses := sumByCategory(filtered, model.TypeExpense)
	revenues := sumByCategory(filtered, model.TypeRevenue)
	savings := sumByCategory(filtered, model.TypeSavings)

	summary := reconcileBudget(expenses, budget, period.Days)

	v := &View{
		FilteredTransactions:    filtered,
		Kpis:                    computeKpis(filtered),
		PreviousKpis:            previousTotals(transactions, filters, bounds),
		MonthlyChartData:        monthlySeries(filtered),
		CategoryChartData:       bucketCategories(expenses, summary),
		RevenueByCategoryData:   topN(revenues, 7),
		SavingsDistributionData: savings,
		ExpenseSummaryData:      summary,
		FilterPeriod:            period,
		ExpenseCategories:       categoryNames(filtered, model.TypeExpense),
		RevenueCategories:       categoryNames(filtered, model.TypeRevenue),
		SavingsCategories:       categoryNames(filtered, model.TypeSavings),
	}
	return v, nil
}

// validate rejects transactions that would break arithmetic invariants.
func validate(transactions []model.Transaction) error {
	for i, t := range transactions {
		if t.Date.IsZero() {
			return fmt.Errorf("transaction %d (%q): zero date", i, t.Description)
		}
		if t.Amount < 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
			return fmt.Errorf("transaction %d (%q): invalid amount %v", i, t.Description, t.Amount)
		}
	}
	return nil
}
