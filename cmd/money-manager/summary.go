package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbendourou/Money-Manager/internal/cli"
	"github.com/nbendourou/Money-Manager/internal/format"
	"github.com/nbendourou/Money-Manager/internal/model"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print KPIs and budget analysis for the selected period",
		Long: `Derive the financial view for the selected period and print the
headline figures, the monthly flows and the budget analysis.`,
		RunE: runSummary,
	}
}

func runSummary(cmd *cobra.Command, _ []string) error {
	view, filters, err := computeView(cmd)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Money Manager"))
	fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("Période: %s (%.0f jours, %d transactions)",
		periodLabel(filters), view.FilterPeriod.Days, len(view.FilteredTransactions))))

	fmt.Println(cli.RenderBox("Indicateurs Clés", kpiContent(view.Kpis, view.PreviousKpis)))

	if len(view.MonthlyChartData) > 0 {
		fmt.Println(cli.RenderBox("Flux Mensuels", monthlyContent(view.MonthlyChartData)))
	}

	if len(view.ExpenseSummaryData) > 0 {
		fmt.Println(cli.RenderBox("Analyse Budgétaire", budgetContent(view.ExpenseSummaryData)))
	}

	slog.Debug("summary rendered",
		"transactions", len(view.FilteredTransactions),
		"budget_lines", len(view.ExpenseSummaryData))

	return nil
}

func kpiContent(kpis model.Kpis, previous model.PeriodTotals) string {
	var b strings.Builder
	line := func(label, value, change string) {
		b.WriteString(fmt.Sprintf("%-16s %s", label, value))
		if change != "" {
			b.WriteString("  " + cli.SubtleStyle.Render(change))
		}
		b.WriteString("\n")
	}

	line("Revenus", cli.RevenueStyle.Render(format.Currency(kpis.TotalRevenue)), changeLabel(kpis.TotalRevenue, previous.TotalRevenue))
	line("Dépenses", cli.ExpenseStyle.Render(format.Currency(kpis.TotalExpenses)), changeLabel(kpis.TotalExpenses, previous.TotalExpenses))
	line("Épargne", cli.SavingsStyle.Render(format.Currency(kpis.TotalSavings)), changeLabel(kpis.TotalSavings, previous.TotalSavings))
	line("Solde Net", cli.BoldStyle.Render(format.SignedCurrency(kpis.NetBalance)), "")
	line("Taux d'Épargne", format.Percent(kpis.SavingsRate), "")

	return strings.TrimRight(b.String(), "\n")
}

// changeLabel renders the variation against the previous period, empty
// when there is nothing to compare.
func changeLabel(current, previous float64) string {
	if previous == 0 {
		return ""
	}
	change := (current - previous) / previous * 100
	return fmt.Sprintf("%+.1f%% vs période préc.", change)
}

func monthlyContent(points []model.MonthlyPoint) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-10s %18s %18s %18s\n", "Mois", "Revenus", "Dépenses", "Épargne"))
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%-10s %18s %18s %18s\n",
			p.Name,
			format.Currency(p.Revenus),
			format.Currency(p.Depenses),
			format.Currency(p.Epargne)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func budgetContent(rows []model.BudgetRow) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-24s %18s %18s %18s\n", "Catégorie", "Réel", "Budget", "Écart"))

	var totalActual, totalProrated, totalDiff float64
	for _, row := range rows {
		diff := format.SignedCurrency(row.Difference)
		if row.Difference < 0 {
			diff = cli.ExpenseStyle.Render(diff)
		}
		b.WriteString(fmt.Sprintf("%-24s %18s %18s %18s\n",
			row.Category,
			format.Currency(row.ActualAmount),
			format.Currency(row.ProratedBudget),
			diff))
		totalActual += row.ActualAmount
		totalProrated += row.ProratedBudget
		totalDiff += row.Difference
	}

	b.WriteString(fmt.Sprintf("%-24s %18s %18s %18s",
		cli.BoldStyle.Render("Total"),
		format.Currency(totalActual),
		format.Currency(totalProrated),
		format.SignedCurrency(totalDiff)))

	return b.String()
}
