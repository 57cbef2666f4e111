package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbendourou/Money-Manager/internal/model"
)

func filterCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(_ *cobra.Command, _ []string) {}}
	cmd.Flags().Int("year", 0, "")
	cmd.Flags().Int("month", 0, "")
	cmd.Flags().String("from", "", "")
	cmd.Flags().String("to", "", "")
	cmd.SetArgs(args)
	_ = cmd.Execute()
	return cmd
}

func TestBuildFiltersYearMonth(t *testing.T) {
	cmd := filterCommand("--year", "2024", "--month", "3")

	filters, err := buildFilters(cmd)
	require.NoError(t, err)

	assert.Equal(t, 2024, filters.Year)
	assert.Equal(t, 3, filters.Month)
	assert.False(t, filters.DateRange.Active())
}

func TestBuildFiltersCustomRange(t *testing.T) {
	cmd := filterCommand("--from", "2024-01-01", "--to", "2024-01-31")

	filters, err := buildFilters(cmd)
	require.NoError(t, err)

	require.True(t, filters.DateRange.Active())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filters.DateRange.Start)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *filters.DateRange.End)
}

func TestBuildFiltersErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "month out of range", args: []string{"--month", "13"}},
		{name: "from without to", args: []string{"--from", "2024-01-01"}},
		{name: "bad from date", args: []string{"--from", "01/01/2024", "--to", "2024-01-31"}},
		{name: "reversed range", args: []string{"--from", "2024-02-01", "--to", "2024-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildFilters(filterCommand(tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Toutes les périodes", periodLabel(model.FilterState{}))
	assert.Equal(t, "2024", periodLabel(model.FilterState{Year: 2024}))
	assert.Equal(t, "2024-03", periodLabel(model.FilterState{Year: 2024, Month: 3}))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	withRange := model.FilterState{DateRange: model.DateRange{Start: &start, End: &end}}
	assert.Equal(t, "2024-01-01 → 2024-01-31", periodLabel(withRange))
}
