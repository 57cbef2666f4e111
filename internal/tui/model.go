// Package tui implements the interactive dashboard.
package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nbendourou/Money-Manager/internal/engine"
	"github.com/nbendourou/Money-Manager/internal/format"
	"github.com/nbendourou/Money-Manager/internal/model"
)

// Tab identifies the active dashboard view.
type Tab int

const (
	TabMonthly Tab = iota
	TabBudget
	TabCategories
	TabTransactions

	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabMonthly:
		return "Flux Mensuels"
	case TabBudget:
		return "Analyse Budgétaire"
	case TabCategories:
		return "Répartition"
	case TabTransactions:
		return "Transactions"
	default:
		return "?"
	}
}

// Config holds the data the dashboard operates on.
type Config struct {
	Transactions []model.Transaction
	Budget       model.Budget
	Filters      model.FilterState
}

// Model holds the dashboard state.
type Model struct {
	view         *engine.View
	lastError    error
	budget       model.Budget
	transactions []model.Transaction
	filters      model.FilterState
	years        []int
	tables       [tabCount]table.Model
	keymap       KeyMap
	help         help.Model
	activeTab    Tab
	width        int
	height       int
	quitting     bool
}

func newModel(cfg Config) Model {
	m := Model{
		transactions: cfg.Transactions,
		budget:       cfg.Budget,
		filters:      cfg.Filters,
		years:        transactionYears(cfg.Transactions),
		keymap:       DefaultKeyMap(),
		help:         help.New(),
	}
	m.initTables()
	m.recompute()
	return m
}

// transactionYears lists the distinct years present in the ledger,
// ascending.
func transactionYears(transactions []model.Transaction) []int {
	seen := make(map[int]bool)
	var years []int
	for _, t := range transactions {
		year := t.Date.Year()
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years
}

func (m *Model) initTables() {
	m.tables[TabMonthly] = newTable([]table.Column{
		{Title: "Mois", Width: 10},
		{Title: "Revenus", Width: 18},
		{Title: "Dépenses", Width: 18},
		{Title: "Épargne", Width: 18},
	})
	m.tables[TabBudget] = newTable([]table.Column{
		{Title: "Catégorie", Width: 24},
		{Title: "Dépenses Réelles", Width: 18},
		{Title: "Budget (Période)", Width: 18},
		{Title: "Écart", Width: 18},
	})
	m.tables[TabCategories] = newTable([]table.Column{
		{Title: "Catégorie", Width: 24},
		{Title: "Dépenses", Width: 18},
		{Title: "Revenus", Width: 18},
	})
	m.tables[TabTransactions] = newTable([]table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 36},
		{Title: "Montant", Width: 16},
		{Title: "Type", Width: 10},
	})
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)
	return t
}

// recompute reruns the derivation pipeline and refreshes table rows.
func (m *Model) recompute() {
	view, err := engine.Compute(m.transactions, m.budget, m.filters)
	if err != nil {
		m.lastError = err
		return
	}
	m.lastError = nil
	m.view = view

	monthly := make([]table.Row, 0, len(view.MonthlyChartData))
	for _, p := range view.MonthlyChartData {
		monthly = append(monthly, table.Row{
			p.Name,
			format.Currency(p.Revenus),
			format.Currency(p.Depenses),
			format.Currency(p.Epargne),
		})
	}
	m.tables[TabMonthly].SetRows(monthly)

	budget := make([]table.Row, 0, len(view.ExpenseSummaryData))
	for _, row := range view.ExpenseSummaryData {
		budget = append(budget, table.Row{
			row.Category,
			format.Currency(row.ActualAmount),
			format.Currency(row.ProratedBudget),
			format.SignedCurrency(row.Difference),
		})
	}
	m.tables[TabBudget].SetRows(budget)

	categories := make([]table.Row, 0, len(view.CategoryChartData))
	revenueByName := make(map[string]float64, len(view.RevenueByCategoryData))
	for _, p := range view.RevenueByCategoryData {
		revenueByName[p.Name] = p.Value
	}
	for _, p := range view.CategoryChartData {
		categories = append(categories, table.Row{
			p.Name,
			format.Currency(p.Value),
			format.Currency(revenueByName[p.Name]),
		})
	}
	m.tables[TabCategories].SetRows(categories)

	transactions := make([]table.Row, 0, len(view.FilteredTransactions))
	for _, t := range view.FilteredTransactions {
		transactions = append(transactions, table.Row{
			t.Date.Format("2006-01-02"),
			t.Description,
			format.Currency(t.Amount),
			string(t.Type),
		})
	}
	m.tables[TabTransactions].SetRows(transactions)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for i := range m.tables {
			m.tables[i].SetHeight(max(6, msg.Height-16))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keymap.NextTab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keymap.PrevTab):
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keymap.NextMonth):
			m.cycleMonth(1)
			return m, nil
		case key.Matches(msg, m.keymap.PrevMonth):
			m.cycleMonth(-1)
			return m, nil
		case key.Matches(msg, m.keymap.NextYear):
			m.cycleYear(1)
			return m, nil
		case key.Matches(msg, m.keymap.PrevYear):
			m.cycleYear(-1)
			return m, nil
		case key.Matches(msg, m.keymap.ClearFilters):
			m.filters.Year = model.AllPeriods
			m.filters.Month = model.AllPeriods
			m.filters.DateRange = model.DateRange{}
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tables[m.activeTab], cmd = m.tables[m.activeTab].Update(msg)
	return m, cmd
}

// cycleMonth steps the month filter through "all" and 1-12. Changing
// the month drops any custom date range so the new filter is visible.
func (m *Model) cycleMonth(step int) {
	month := m.filters.Month + step
	if month > 12 {
		month = model.AllPeriods
	}
	if month < 0 {
		month = 12
	}
	m.filters.Month = month
	m.filters.DateRange = model.DateRange{}
	m.recompute()
}

// cycleYear steps the year filter through "all" and the ledger years.
func (m *Model) cycleYear(step int) {
	if len(m.years) == 0 {
		return
	}

	// Position in the cycle: -1 means "all periods".
	idx := -1
	for i, year := range m.years {
		if year == m.filters.Year {
			idx = i
			break
		}
	}

	idx += step
	switch {
	case idx >= len(m.years):
		idx = -1
	case idx < -1:
		idx = len(m.years) - 1
	}

	if idx == -1 {
		m.filters.Year = model.AllPeriods
	} else {
		m.filters.Year = m.years[idx]
	}
	m.filters.DateRange = model.DateRange{}
	m.recompute()
}

// periodLabel describes the active filter for the header.
func (m Model) periodLabel() string {
	if m.filters.DateRange.Active() {
		return fmt.Sprintf("%s → %s",
			m.filters.DateRange.Start.Format("2006-01-02"),
			m.filters.DateRange.End.Format("2006-01-02"))
	}
	switch {
	case m.filters.Year != model.AllPeriods && m.filters.Month != model.AllPeriods:
		return fmt.Sprintf("%04d-%02d", m.filters.Year, m.filters.Month)
	case m.filters.Year != model.AllPeriods:
		return fmt.Sprintf("%04d", m.filters.Year)
	default:
		return "Toutes les périodes"
	}
}
