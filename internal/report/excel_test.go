package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nbendourou/Money-Manager/internal/engine"
	"github.com/nbendourou/Money-Manager/internal/model"
)

func sampleView() *engine.View {
	return &engine.View{
		FilteredTransactions: []model.Transaction{
			{
				Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Description: "Salaire - Mars",
				Account:     "Compte Courant",
				Type:        model.TypeRevenue,
				Amount:      9000,
			},
			{
				Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Description: "Courses - Marjane",
				Account:     "Compte Courant",
				Type:        model.TypeExpense,
				Amount:      450.50,
			},
			{
				Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				Description: "Bourse - PEA",
				Account:     "Compte Titres",
				Type:        model.TypeSavings,
				Amount:      1200,
			},
		},
		Kpis: model.Kpis{
			TotalRevenue:  9000,
			TotalExpenses: 450.50,
			TotalSavings:  1200,
			NetBalance:    7349.50,
			SavingsRate:   13.333333,
		},
		ExpenseSummaryData: []model.BudgetRow{
			{Category: "Courses", ActualAmount: 450.50, ProratedBudget: 500, Difference: 49.50},
			{Category: "Loyer", ActualAmount: 0, ProratedBudget: 300, Difference: 300},
		},
	}
}

func TestWriteExcelSheets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleView()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Résumé et Totaux", "Analyse Budgétaire", "Transactions"}, f.GetSheetList())
}

func TestWriteExcelSummaryValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleView()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	label, err := f.GetCellValue("Résumé et Totaux", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total Revenus", label)

	revenue, err := f.GetCellValue("Résumé et Totaux", "B4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "9000", revenue)
}

func TestWriteExcelBudgetFooter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleView()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// Two data rows, footer on row 4.
	label, err := f.GetCellValue("Analyse Budgétaire", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)

	total, err := f.GetCellValue("Analyse Budgétaire", "B4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "450.5", total)
}

func TestWriteExcelTransactionsSignAndLabel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleView()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Transactions", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Revenue keeps its sign, everything else is negated.
	assert.Equal(t, "9000", rows[1][2])
	assert.Equal(t, "-450.5", rows[2][2])
	assert.Equal(t, "-1200", rows[3][2])

	assert.Equal(t, "Revenu", rows[1][3])
	assert.Equal(t, "Dépense", rows[2][3])
	assert.Equal(t, "Epargne/Invest.", rows[3][3])
}

func TestWriteBudgetAnalysisExcel(t *testing.T) {
	var buf bytes.Buffer
	rows := []model.BudgetRow{
		{Category: "Courses", ActualAmount: 100, ProratedBudget: 150, Difference: 50},
	}
	require.NoError(t, WriteBudgetAnalysisExcel(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Analyse Budgétaire"}, f.GetSheetList())

	header, err := f.GetCellValue("Analyse Budgétaire", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Catégorie", header)

	category, err := f.GetCellValue("Analyse Budgétaire", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Courses", category)
}

func TestSignedAmount(t *testing.T) {
	revenue := model.Transaction{Type: model.TypeRevenue, Amount: 100}
	expense := model.Transaction{Type: model.TypeExpense, Amount: 100}
	savings := model.Transaction{Type: model.TypeSavings, Amount: 100}

	assert.Equal(t, 100.0, signedAmount(revenue))
	assert.Equal(t, -100.0, signedAmount(expense))
	assert.Equal(t, -100.0, signedAmount(savings))
}
