package engine

import (
	"testing"
	"time"

	"github.com/nbendourou/Money-Manager/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(value string) *time.Time {
	d := date(value)
	return &d
}

func tx(day, description string, amount float64, txType model.TransactionType) model.Transaction {
	return model.Transaction{
		Date:        date(day),
		Description: description,
		Amount:      amount,
		Type:        txType,
		Account:     "Compte courant",
	}
}

func sampleLedger() []model.Transaction {
	return []model.Transaction{
		tx("2024-01-15", "Salaire - Janvier", 3000, model.TypeRevenue),
		tx("2024-01-20", "Alimentation - Supermarché", 450, model.TypeExpense),
		tx("2024-01-25", "Epargne - Livret A", 500, model.TypeSavings),
		tx("2024-02-15", "Salaire - Février", 3000, model.TypeRevenue),
		tx("2024-02-18", "Loyer - Appartement", 900, model.TypeExpense),
		tx("2024-02-20", "Alimentation - Marché", 200, model.TypeExpense),
		tx("2024-03-10", "Transport - Essence", 120, model.TypeExpense),
	}
}

func TestComputeEmptyInput(t *testing.T) {
	v, err := Compute(nil, model.Budget{}, model.FilterState{})
	require.NoError(t, err)

	assert.Empty(t, v.FilteredTransactions)
	assert.Zero(t, v.FilterPeriod.Days)
	assert.Zero(t, v.Kpis.TotalRevenue)
	assert.Zero(t, v.Kpis.TotalExpenses)
	assert.Zero(t, v.Kpis.TotalSavings)
	assert.Zero(t, v.Kpis.NetBalance)
	assert.Zero(t, v.Kpis.SavingsRate, "no division by zero on empty revenue")
	assert.Empty(t, v.MonthlyChartData)
	assert.Empty(t, v.CategoryChartData)
}

func TestComputeIdempotence(t *testing.T) {
	ledger := sampleLedger()
	budget := model.Budget{"Alimentation": 6000, "Loyer": 10800}
	filters := model.NewFilterState(2024)

	first, err := Compute(ledger, budget, filters)
	require.NoError(t, err)
	second, err := Compute(ledger, budget, filters)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeKpisConservation(t *testing.T) {
	v, err := Compute(sampleLedger(), model.Budget{}, model.NewFilterState(2024))
	require.NoError(t, err)

	var revenue, expenses, savings float64
	for _, t := range v.FilteredTransactions {
		switch t.Type {
		case model.TypeRevenue:
			revenue += t.Amount
		case model.TypeExpense:
			expenses += t.Amount
		case model.TypeSavings:
			savings += t.Amount
		}
	}

	assert.InDelta(t, revenue, v.Kpis.TotalRevenue, 1e-9)
	assert.InDelta(t, expenses, v.Kpis.TotalExpenses, 1e-9)
	assert.InDelta(t, savings, v.Kpis.TotalSavings, 1e-9)
	assert.InDelta(t, revenue-expenses-savings, v.Kpis.NetBalance, 1e-9)
	assert.InDelta(t, savings/revenue*100, v.Kpis.SavingsRate, 1e-9)
}

func TestComputeFilteredSortedDescending(t *testing.T) {
	// Input deliberately out of order.
	ledger := []model.Transaction{
		tx("2024-02-01", "B", 1, model.TypeExpense),
		tx("2024-03-01", "C", 1, model.TypeExpense),
		tx("2024-01-01", "A", 1, model.TypeExpense),
	}

	v, err := Compute(ledger, model.Budget{}, model.FilterState{})
	require.NoError(t, err)

	require.Len(t, v.FilteredTransactions, 3)
	for i := 1; i < len(v.FilteredTransactions); i++ {
		assert.False(t, v.FilteredTransactions[i-1].Date.Before(v.FilteredTransactions[i].Date))
	}
}

func TestComputeInclusiveSingleDayRange(t *testing.T) {
	ledger := []model.Transaction{
		tx("2024-05-10", "Inside", 10, model.TypeExpense),
		tx("2024-05-11", "Outside", 20, model.TypeExpense),
	}
	filters := model.FilterState{
		DateRange: model.DateRange{Start: datePtr("2024-05-10"), End: datePtr("2024-05-10")},
	}

	v, err := Compute(ledger, model.Budget{}, filters)
	require.NoError(t, err)

	require.Len(t, v.FilteredTransactions, 1)
	assert.Equal(t, "Inside", v.FilteredTransactions[0].Description)
	assert.Equal(t, 1.0, v.FilterPeriod.Days)
}

func TestComputeDateRangeOverridesYearMonth(t *testing.T) {
	ledger := []model.Transaction{
		tx("2023-06-15", "Old", 10, model.TypeExpense),
		tx("2024-06-15", "New", 20, model.TypeExpense),
	}
	// Year filter says 2024, but the range points at 2023: the range wins.
	filters := model.FilterState{
		Year:      2024,
		DateRange: model.DateRange{Start: datePtr("2023-06-01"), End: datePtr("2023-06-30")},
	}

	v, err := Compute(ledger, model.Budget{}, filters)
	require.NoError(t, err)

	require.Len(t, v.FilteredTransactions, 1)
	assert.Equal(t, "Old", v.FilteredTransactions[0].Description)
}

func TestComputeMonthlySeries(t *testing.T) {
	v, err := Compute(sampleLedger(), model.Budget{}, model.NewFilterState(2024))
	require.NoError(t, err)

	require.Len(t, v.MonthlyChartData, 3)
	assert.Equal(t, "2024-01", v.MonthlyChartData[0].Name)
	assert.Equal(t, "2024-02", v.MonthlyChartData[1].Name)
	assert.Equal(t, "2024-03", v.MonthlyChartData[2].Name)

	january := v.MonthlyChartData[0]
	assert.Equal(t, 3000.0, january.Revenus)
	assert.Equal(t, 450.0, january.Depenses)
	assert.Equal(t, 500.0, january.Epargne)
}

func TestComputeRevenueTopSevenCap(t *testing.T) {
	var ledger []model.Transaction
	// Ten revenue categories with strictly decreasing amounts.
	for i := 0; i < 10; i++ {
		ledger = append(ledger, tx(
			"2024-01-10",
			string(rune('A'+i))+" - Source",
			float64(100-i),
			model.TypeRevenue,
		))
	}

	v, err := Compute(ledger, model.Budget{}, model.NewFilterState(2024))
	require.NoError(t, err)

	require.Len(t, v.RevenueByCategoryData, 7)
	assert.Equal(t, "A", v.RevenueByCategoryData[0].Name)
	assert.Equal(t, 100.0, v.RevenueByCategoryData[0].Value)
	for i := 1; i < 7; i++ {
		assert.GreaterOrEqual(t,
			v.RevenueByCategoryData[i-1].Value,
			v.RevenueByCategoryData[i].Value)
	}
}

func TestComputeCategoryKeyParsing(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"two separators", "Alimentation - Supermarché - Note", "Alimentation"},
		{"no separator", "Divers", "Divers"},
		{"separator only at end", "Loyer - ", "Loyer"},
		{"hyphen without spaces is not a separator", "Sous-catégorie", "Sous-catégorie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction := model.Transaction{Description: tt.description}
			assert.Equal(t, tt.want, transaction.CategoryKey())
		})
	}
}

func TestComputeRejectsContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		ledger []model.Transaction
	}{
		{"negative amount", []model.Transaction{{Date: date("2024-01-01"), Description: "X", Amount: -1, Type: model.TypeExpense}}},
		{"zero date", []model.Transaction{{Description: "X", Amount: 1, Type: model.TypeExpense}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.ledger, model.Budget{}, model.FilterState{})
			assert.Error(t, err)
		})
	}
}

func TestComputeCategoryNameLists(t *testing.T) {
	v, err := Compute(sampleLedger(), model.Budget{}, model.NewFilterState(2024))
	require.NoError(t, err)

	assert.Equal(t, []string{"Alimentation", "Loyer", "Transport"}, v.ExpenseCategories)
	assert.Equal(t, []string{"Salaire"}, v.RevenueCategories)
	assert.Equal(t, []string{"Epargne"}, v.SavingsCategories)
}
