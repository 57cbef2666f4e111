// Package report renders a computed finance view into exportable
// documents: multi-sheet Excel workbooks and PDF reports. It consumes
// the engine's output verbatim and never recomputes aggregates.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/nbendourou/Money-Manager/internal/engine"
	"github.com/nbendourou/Money-Manager/internal/model"
)

// Excel number formats used across all sheets.
const (
	currencyNumFmt = `#,##0.00 "MAD";[Red]-#,##0.00 "MAD"`
	percentNumFmt  = "0.00%"
)

// budgetHeaders lead the budget-analysis sheet and PDF table.
var budgetHeaders = []string{"Catégorie", "Dépenses Réelles", "Budget (Période)", "Écart"}

// budgetTotals sums the reconciliation rows for footer lines.
type budgetTotals struct {
	actual   float64
	prorated float64
	diff     float64
}

func sumBudgetRows(rows []model.BudgetRow) budgetTotals {
	var t budgetTotals
	for _, row := range rows {
		t.actual += row.ActualAmount
		t.prorated += row.ProratedBudget
		t.diff += row.Difference
	}
	return t
}

// WriteExcel writes the full financial report to w as a workbook with
// three sheets: a KPI summary, the budget analysis and the filtered
// transactions.
func WriteExcel(w io.Writer, view *engine.View) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(currencyNumFmt)})
	if err != nil {
		return fmt.Errorf("failed to create currency style: %w", err)
	}
	percent, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(percentNumFmt)})
	if err != nil {
		return fmt.Errorf("failed to create percent style: %w", err)
	}

	if err := writeSummarySheet(f, view, currency, percent); err != nil {
		return err
	}
	if err := writeBudgetSheet(f, "Analyse Budgétaire", view.ExpenseSummaryData, currency); err != nil {
		return err
	}
	if err := writeTransactionsSheet(f, view.FilteredTransactions, currency); err != nil {
		return err
	}

	// Drop the default sheet so the summary comes first.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteBudgetAnalysisExcel writes only the budget-analysis sheet, for
// the dedicated table export.
func WriteBudgetAnalysisExcel(w io.Writer, rows []model.BudgetRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(currencyNumFmt)})
	if err != nil {
		return fmt.Errorf("failed to create currency style: %w", err)
	}

	if err := writeBudgetSheet(f, "Analyse Budgétaire", rows, currency); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, view *engine.View, currency, percent int) error {
	const sheet = "Résumé et Totaux"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	totals := sumBudgetRows(view.ExpenseSummaryData)
	rows := [][]any{
		{"Rapport Financier - Résumé"},
		{},
		{"Indicateurs Clés de Performance (KPIs)"},
		{"Total Revenus", view.Kpis.TotalRevenue},
		{"Total Dépenses", view.Kpis.TotalExpenses},
		{"Total Épargne", view.Kpis.TotalSavings},
		{"Solde Net", view.Kpis.NetBalance},
		{"Taux d'Épargne", view.Kpis.SavingsRate / 100},
		{},
		{"Totaux de l'Analyse Budgétaire"},
		{"Dépenses Réelles (Total)", totals.actual},
		{"Budget Période (Total)", totals.prorated},
		{"Écart (Total)", totals.diff},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	// Currency on every numeric cell, percent on the savings rate.
	for _, cell := range []string{"B4", "B5", "B6", "B7", "B11", "B12", "B13"} {
		if err := f.SetCellStyle(sheet, cell, cell, currency); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "B8", "B8", percent); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 20)
}

func writeBudgetSheet(f *excelize.File, sheet string, rows []model.BudgetRow, currency int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	header := make([]any, len(budgetHeaders))
	for i, h := range budgetHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write budget header: %w", err)
	}

	for i, row := range rows {
		values := []any{row.Category, row.ActualAmount, row.ProratedBudget, row.Difference}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write budget row %d: %w", i+2, err)
		}
	}

	totals := sumBudgetRows(rows)
	footerRow := len(rows) + 2
	footer := []any{"Total", totals.actual, totals.prorated, totals.diff}
	cell, err := excelize.CoordinatesToCellName(1, footerRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &footer); err != nil {
		return fmt.Errorf("failed to write budget footer: %w", err)
	}

	if err := f.SetCellStyle(sheet, "B2", fmt.Sprintf("D%d", footerRow), currency); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "D", 20)
}

func writeTransactionsSheet(f *excelize.File, transactions []model.Transaction, currency int) error {
	const sheet = "Transactions"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	header := []any{"Date", "Description", "Montant", "Type", "Compte"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write transactions header: %w", err)
	}

	for i, t := range transactions {
		values := []any{
			t.Date.Format("2006-01-02"),
			t.Description,
			signedAmount(t),
			displayType(t.Type),
			t.Account,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write transaction row %d: %w", i+2, err)
		}
	}

	if len(transactions) > 0 {
		if err := f.SetCellStyle(sheet, "C2", fmt.Sprintf("C%d", len(transactions)+1), currency); err != nil {
			return err
		}
	}
	widths := []struct {
		col   string
		width float64
	}{{"A", 12}, {"B", 40}, {"C", 20}, {"D", 15}, {"E", 20}}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.col, w.col, w.width); err != nil {
			return err
		}
	}
	return nil
}

// signedAmount restores the ledger sign convention for display: only
// revenue stays positive.
func signedAmount(t model.Transaction) float64 {
	if t.Type == model.TypeRevenue {
		return t.Amount
	}
	return -t.Amount
}

// displayType renders the savings type under its reporting label.
func displayType(txType model.TransactionType) string {
	if txType == model.TypeSavings {
		return "Epargne/Invest."
	}
	return string(txType)
}

func strPtr(s string) *string { return &s }
