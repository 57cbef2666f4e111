package main

import (
	"github.com/spf13/cobra"

	"github.com/nbendourou/Money-Manager/internal/common"
	"github.com/nbendourou/Money-Manager/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Browse the finance dashboard interactively",
		Long: `Open an interactive terminal dashboard: KPIs with previous-period
comparison, monthly flows, category distributions and the budget
analysis, with month and year filters.`,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	filters, err := buildFilters(cmd)
	if err != nil {
		return err
	}

	transactions, err := loadLedger()
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.NewUserError("The ledger contains no transactions.", common.ErrNoTransactions)
	}

	budget, err := loadBudget()
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), tui.Config{
		Transactions: transactions,
		Budget:       budget,
		Filters:      filters,
	})
}
