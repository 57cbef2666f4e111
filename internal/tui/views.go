package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nbendourou/Money-Manager/internal/cli"
	"github.com/nbendourou/Money-Manager/internal/format"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(cli.SubtleColor)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(cli.PrimaryColor).
			Underline(true)

	kpiBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.SubtleColor).
			Padding(0, 2).
			MarginRight(1)
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.lastError != nil {
		return cli.FormatError(fmt.Sprintf("dashboard error: %v", m.lastError)) + "\n"
	}
	if m.view == nil {
		return "Chargement..."
	}

	var b strings.Builder

	b.WriteString(cli.FormatTitle("Money Manager"))
	b.WriteString("\n")
	b.WriteString(cli.SubtitleStyle.Render(fmt.Sprintf("Période: %s (%.0f jours, %d transactions)",
		m.periodLabel(), m.view.FilterPeriod.Days, len(m.view.FilteredTransactions))))
	b.WriteString("\n\n")

	b.WriteString(m.renderKpis())
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.tables[m.activeTab].View())
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keymap))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderKpis() string {
	kpis := m.view.Kpis
	previous := m.view.PreviousKpis

	boxes := []string{
		kpiBox("Revenus", cli.RevenueStyle.Render(format.Currency(kpis.TotalRevenue)), delta(kpis.TotalRevenue, previous.TotalRevenue)),
		kpiBox("Dépenses", cli.ExpenseStyle.Render(format.Currency(kpis.TotalExpenses)), delta(kpis.TotalExpenses, previous.TotalExpenses)),
		kpiBox("Épargne", cli.SavingsStyle.Render(format.Currency(kpis.TotalSavings)), delta(kpis.TotalSavings, previous.TotalSavings)),
		kpiBox("Solde Net", cli.BoldStyle.Render(format.SignedCurrency(kpis.NetBalance)), ""),
		kpiBox("Taux d'Épargne", format.Percent(kpis.SavingsRate), ""),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func kpiBox(label, value, footnote string) string {
	content := cli.SubtleStyle.Render(label) + "\n" + value
	if footnote != "" {
		content += "\n" + cli.SubtleStyle.Render(footnote)
	}
	return kpiBoxStyle.Render(content)
}

// delta describes the change against the previous period, empty when
// there is no comparable period.
func delta(current, previous float64) string {
	if previous == 0 {
		return ""
	}
	change := (current - previous) / previous * 100
	sign := "+"
	if change < 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%.1f%% vs période préc.", sign, change)
}

func (m Model) renderTabs() string {
	var tabs []string
	for t := Tab(0); t < tabCount; t++ {
		if t == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
