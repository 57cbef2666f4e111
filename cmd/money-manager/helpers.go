package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nbendourou/Money-Manager/internal/common"
	"github.com/nbendourou/Money-Manager/internal/config"
	"github.com/nbendourou/Money-Manager/internal/engine"
	"github.com/nbendourou/Money-Manager/internal/ingest"
	"github.com/nbendourou/Money-Manager/internal/model"
)

// loadLedger reads the transactions file named by --ledger or the
// config, choosing the parser by extension.
func loadLedger() ([]model.Transaction, error) {
	path := viper.GetString("data.ledger")
	if path == "" {
		return nil, common.NewUserError(
			"No transactions file configured. Pass --ledger or set data.ledger in the config file.",
			common.ErrMissingConfig,
		)
	}
	path = config.ExpandPath(path)

	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofx", ".qfx":
		return ingest.NewOFXParser().ParseFile(f)
	default:
		return ingest.ReadLedger(f)
	}
}

// loadBudget reads the annual budget file when configured. A missing
// flag means an empty budget, not an error.
func loadBudget() (model.Budget, error) {
	path := viper.GetString("data.budget")
	if path == "" {
		return model.Budget{}, nil
	}
	path = config.ExpandPath(path)

	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to open budget %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ingest.ReadBudget(f)
}

// buildFilters assembles the period filter from the shared flags.
func buildFilters(cmd *cobra.Command) (model.FilterState, error) {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	filters := model.FilterState{Year: year, Month: month}

	if month < 0 || month > 12 {
		return filters, common.NewUserError(
			fmt.Sprintf("Invalid month %d: expected a value between 1 and 12.", month),
			common.ErrInvalidConfig,
		)
	}

	if from != "" || to != "" {
		if from == "" || to == "" {
			return filters, common.NewUserError(
				"Both --from and --to are required for a custom range.",
				common.ErrInvalidConfig,
			)
		}
		start, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filters, common.NewUserError(
				fmt.Sprintf("Invalid --from date %q: expected YYYY-MM-DD.", from),
				err,
			)
		}
		end, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filters, common.NewUserError(
				fmt.Sprintf("Invalid --to date %q: expected YYYY-MM-DD.", to),
				err,
			)
		}
		if end.Before(start) {
			return filters, common.NewUserError(
				"--to must not be before --from.",
				common.ErrInvalidConfig,
			)
		}
		filters.DateRange = model.DateRange{Start: &start, End: &end}
	}

	return filters, nil
}

// computeView loads the data sources and runs the derivation pipeline.
func computeView(cmd *cobra.Command) (*engine.View, model.FilterState, error) {
	filters, err := buildFilters(cmd)
	if err != nil {
		return nil, filters, err
	}

	transactions, err := loadLedger()
	if err != nil {
		return nil, filters, err
	}

	budget, err := loadBudget()
	if err != nil {
		return nil, filters, err
	}

	view, err := engine.Compute(transactions, budget, filters)
	if err != nil {
		return nil, filters, err
	}

	return view, filters, nil
}

// periodLabel describes the active filter for report titles.
func periodLabel(filters model.FilterState) string {
	if filters.DateRange.Active() {
		return fmt.Sprintf("%s → %s",
			filters.DateRange.Start.Format("2006-01-02"),
			filters.DateRange.End.Format("2006-01-02"))
	}
	switch {
	case filters.Year != model.AllPeriods && filters.Month != model.AllPeriods:
		return fmt.Sprintf("%04d-%02d", filters.Year, filters.Month)
	case filters.Year != model.AllPeriods:
		return fmt.Sprintf("%04d", filters.Year)
	default:
		return "Toutes les périodes"
	}
}
