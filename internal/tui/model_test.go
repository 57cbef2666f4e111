package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbendourou/Money-Manager/internal/model"
)

func testConfig() Config {
	return Config{
		Transactions: []model.Transaction{
			{
				Date:        time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
				Description: "Salaire - Juin",
				Type:        model.TypeRevenue,
				Amount:      8000,
			},
			{
				Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Description: "Courses - Marjane",
				Type:        model.TypeExpense,
				Amount:      300,
			},
			{
				Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Description: "Bourse - PEA",
				Type:        model.TypeSavings,
				Amount:      1000,
			},
		},
		Budget:  model.Budget{"Courses": 6000},
		Filters: model.FilterState{Year: model.AllPeriods, Month: model.AllPeriods},
	}
}

func TestNewModelComputesView(t *testing.T) {
	m := newModel(testConfig())

	require.NotNil(t, m.view)
	require.NoError(t, m.lastError)
	assert.Len(t, m.tables[TabTransactions].Rows(), 3)
	assert.Len(t, m.tables[TabMonthly].Rows(), 2)
	assert.Equal(t, []int{2023, 2024}, m.years)
}

func TestTabCycling(t *testing.T) {
	m := newModel(testConfig())
	assert.Equal(t, TabMonthly, m.activeTab)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, TabBudget, m.activeTab)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, TabMonthly, m.activeTab)
}

func TestMonthCyclingWrapsToAll(t *testing.T) {
	m := newModel(testConfig())

	m.filters.Month = 12
	m.cycleMonth(1)
	assert.Equal(t, model.AllPeriods, m.filters.Month)

	m.cycleMonth(-1)
	assert.Equal(t, 12, m.filters.Month)
}

func TestYearCycling(t *testing.T) {
	m := newModel(testConfig())
	require.Equal(t, model.AllPeriods, m.filters.Year)

	m.cycleYear(1)
	assert.Equal(t, 2023, m.filters.Year)

	m.cycleYear(1)
	assert.Equal(t, 2024, m.filters.Year)

	// Wraps back to "all periods".
	m.cycleYear(1)
	assert.Equal(t, model.AllPeriods, m.filters.Year)

	m.cycleYear(-1)
	assert.Equal(t, 2024, m.filters.Year)
}

func TestFilteringRefreshesTables(t *testing.T) {
	m := newModel(testConfig())

	m.filters.Year = 2024
	m.filters.Month = 3
	m.recompute()

	require.NoError(t, m.lastError)
	assert.Len(t, m.tables[TabTransactions].Rows(), 2)
	assert.Equal(t, "2024-03", m.periodLabel())
}

func TestPeriodLabel(t *testing.T) {
	m := newModel(testConfig())
	assert.Equal(t, "Toutes les périodes", m.periodLabel())

	m.filters.Year = 2024
	assert.Equal(t, "2024", m.periodLabel())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	m.filters.DateRange = model.DateRange{Start: &start, End: &end}
	assert.Equal(t, "2024-01-01 → 2024-01-31", m.periodLabel())
}

func TestQuitKey(t *testing.T) {
	m := newModel(testConfig())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}
