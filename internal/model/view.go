package model

// Kpis holds the headline indicators for the active filter period.
// SavingsRate is a percentage (0-100), not a fraction.
type Kpis struct {
	TotalRevenue  float64
	TotalExpenses float64
	TotalSavings  float64
	NetBalance    float64
	SavingsRate   float64
}

// PeriodTotals holds the per-type sums for a comparison period. It is
// the reduced KPI shape used for the previous-period baseline.
type PeriodTotals struct {
	TotalRevenue  float64
	TotalExpenses float64
	TotalSavings  float64
}

// MonthlyPoint is one month of the time series. Name is the zero-padded
// "YYYY-MM" bucket key; the value fields keep the French names the chart
// layer renders directly.
type MonthlyPoint struct {
	Name     string
	Revenus  float64
	Depenses float64
	Epargne  float64
}

// CategoryPoint is one slice of a categorical distribution.
type CategoryPoint struct {
	Name  string
	Value float64
}

// BudgetRow reconciles one category against its prorated annual budget.
// Difference is positive when under budget, negative when over.
type BudgetRow struct {
	Category       string
	ActualAmount   float64
	ProratedBudget float64
	Difference     float64
}

// FilterPeriod is the inclusive day span of the filtered transaction set.
// Days is 0 when the set is empty.
type FilterPeriod struct {
	Days float64
}
