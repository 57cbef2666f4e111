package sheets

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nbendourou/Money-Manager/internal/engine"
	"github.com/nbendourou/Money-Manager/internal/model"
)

// KpiSummary holds the headline figures written to the summary block.
type KpiSummary struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalSavings  decimal.Decimal
	NetBalance    decimal.Decimal
	SavingsRate   decimal.Decimal // percentage, 0-100
}

// BudgetLine is a single row of the budget analysis section.
type BudgetLine struct {
	Category       string
	ActualAmount   decimal.Decimal
	ProratedBudget decimal.Decimal
	Difference     decimal.Decimal
}

// MonthlyLine is a single row of the monthly flow section.
type MonthlyLine struct {
	Month    string // "YYYY-MM"
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// TransactionRow is a single row of the transaction details section.
type TransactionRow struct {
	Date        time.Time
	Description string
	Account     string
	Type        string
	Amount      decimal.Decimal // ledger sign convention, revenue positive
}

// ReportData holds everything the writer pushes to the spreadsheet.
type ReportData struct {
	PeriodLabel  string
	PeriodDays   decimal.Decimal
	Kpis         KpiSummary
	Budget       []BudgetLine
	Monthly      []MonthlyLine
	Transactions []TransactionRow
}

// FromView converts a computed finance view into spreadsheet rows.
// Amounts move to decimal here so the Sheets payload carries exact
// string representations instead of float noise.
func FromView(view *engine.View, periodLabel string) *ReportData {
	data := &ReportData{
		PeriodLabel: periodLabel,
		PeriodDays:  decimal.NewFromFloat(view.FilterPeriod.Days),
		Kpis: KpiSummary{
			TotalRevenue:  decimal.NewFromFloat(view.Kpis.TotalRevenue),
			TotalExpenses: decimal.NewFromFloat(view.Kpis.TotalExpenses),
			TotalSavings:  decimal.NewFromFloat(view.Kpis.TotalSavings),
			NetBalance:    decimal.NewFromFloat(view.Kpis.NetBalance),
			SavingsRate:   decimal.NewFromFloat(view.Kpis.SavingsRate),
		},
		Budget:       make([]BudgetLine, 0, len(view.ExpenseSummaryData)),
		Monthly:      make([]MonthlyLine, 0, len(view.MonthlyChartData)),
		Transactions: make([]TransactionRow, 0, len(view.FilteredTransactions)),
	}

	for _, row := range view.ExpenseSummaryData {
		data.Budget = append(data.Budget, BudgetLine{
			Category:       row.Category,
			ActualAmount:   decimal.NewFromFloat(row.ActualAmount),
			ProratedBudget: decimal.NewFromFloat(row.ProratedBudget),
			Difference:     decimal.NewFromFloat(row.Difference),
		})
	}

	for _, point := range view.MonthlyChartData {
		data.Monthly = append(data.Monthly, MonthlyLine{
			Month:    point.Name,
			Revenue:  decimal.NewFromFloat(point.Revenus),
			Expenses: decimal.NewFromFloat(point.Depenses),
			Savings:  decimal.NewFromFloat(point.Epargne),
		})
	}

	for _, t := range view.FilteredTransactions {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type != model.TypeRevenue {
			amount = amount.Neg()
		}
		data.Transactions = append(data.Transactions, TransactionRow{
			Date:        t.Date,
			Description: t.Description,
			Account:     t.Account,
			Type:        string(t.Type),
			Amount:      amount,
		})
	}

	return data
}
