package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbendourou/Money-Manager/internal/cli"
	"github.com/nbendourou/Money-Manager/internal/common"
	"github.com/nbendourou/Money-Manager/internal/config"
	"github.com/nbendourou/Money-Manager/internal/report"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export reports to Excel or PDF",
	}

	cmd.AddCommand(exportExcelCmd())
	cmd.AddCommand(exportPDFCmd())
	cmd.AddCommand(exportAnalysisCmd())

	return cmd
}

func exportExcelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excel",
		Short: "Export the full report as an Excel workbook",
		RunE:  runExportExcel,
	}
	cmd.Flags().StringP("output", "o", "", "output file (default: Rapport_Financier_<date>.xlsx)")
	return cmd
}

func exportPDFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export the full report as a PDF document",
		RunE:  runExportPDF,
	}
	cmd.Flags().StringP("output", "o", "", "output file (default: Rapport_Financier_<date>.pdf)")
	return cmd
}

func exportAnalysisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Export only the budget analysis table as Excel",
		RunE:  runExportAnalysis,
	}
	cmd.Flags().StringP("output", "o", "", "output file (default: Analyse_Budgetaire_<date>.xlsx)")
	return cmd
}

func runExportExcel(cmd *cobra.Command, _ []string) error {
	view, _, err := computeView(cmd)
	if err != nil {
		return err
	}
	if len(view.FilteredTransactions) == 0 {
		return common.NewUserError("No transactions in the selected period.", common.ErrNoReportData)
	}

	output := outputPath(cmd, "Rapport_Financier", "xlsx")
	f, err := os.Create(output) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = f.Close() }()

	if err := report.WriteExcel(f, view); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess("Excel report written"), "file", output)
	return nil
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	view, _, err := computeView(cmd)
	if err != nil {
		return err
	}
	if len(view.FilteredTransactions) == 0 {
		return common.NewUserError("No transactions in the selected period.", common.ErrNoReportData)
	}

	reportCfg := config.LoadReportConfig()
	exporter := &report.PDFExporter{FontPath: reportCfg.FontPath}

	output := outputPath(cmd, "Rapport_Financier", "pdf")
	f, err := os.Create(output) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = f.Close() }()

	if err := exporter.WritePDF(f, view, reportCfg.ChartImages); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess("PDF report written"), "file", output)
	return nil
}

func runExportAnalysis(cmd *cobra.Command, _ []string) error {
	view, _, err := computeView(cmd)
	if err != nil {
		return err
	}
	if len(view.ExpenseSummaryData) == 0 {
		return common.NewUserError("No budget analysis for the selected period.", common.ErrNoReportData)
	}

	output := outputPath(cmd, "Analyse_Budgetaire", "xlsx")
	f, err := os.Create(output) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = f.Close() }()

	if err := report.WriteBudgetAnalysisExcel(f, view.ExpenseSummaryData); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess("Budget analysis written"), "file", output)
	return nil
}

// outputPath resolves the --output flag, defaulting to a dated name in
// the working directory.
func outputPath(cmd *cobra.Command, prefix, ext string) string {
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		return config.ExpandPath(output)
	}
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
}
