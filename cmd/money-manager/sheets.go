package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nbendourou/Money-Manager/internal/cli"
	"github.com/nbendourou/Money-Manager/internal/common"
	"github.com/nbendourou/Money-Manager/internal/config"
	"github.com/nbendourou/Money-Manager/internal/sheets"
)

func sheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Export the report to Google Sheets",
		Long: `Push the derived report (KPIs, budget analysis, monthly flows and
transactions) to a Google Sheets spreadsheet.

Authentication uses either a service account key or OAuth2 credentials;
run 'money-manager sheets auth' once for the interactive OAuth2 flow.`,
		RunE: runSheets,
	}

	cmd.AddCommand(sheetsAuthCmd())

	return cmd
}

func sheetsAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Google Sheets interactively",
		RunE:  runSheetsAuth,
	}
}

func runSheets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	view, filters, err := computeView(cmd)
	if err != nil {
		return err
	}
	if len(view.FilteredTransactions) == 0 {
		return common.NewUserError("No transactions in the selected period.", common.ErrNoReportData)
	}

	sheetsCfg, err := config.LoadSheetsConfig()
	if err != nil {
		return common.NewUserError(
			"Google Sheets is not configured. Run 'money-manager sheets auth' or set sheets.* in the config file.",
			err,
		)
	}

	writer, err := sheets.NewWriter(ctx, *sheetsCfg, slog.Default())
	if err != nil {
		return err
	}

	data := sheets.FromView(view, periodLabel(filters))
	if err := writer.Write(ctx, data); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess("Report exported to Google Sheets"))
	return nil
}

func runSheetsAuth(cmd *cobra.Command, _ []string) error {
	clientID := viper.GetString("sheets.client_id")
	clientSecret := viper.GetString("sheets.client_secret")
	if clientID == "" || clientSecret == "" {
		return common.NewUserError(
			"Set sheets.client_id and sheets.client_secret in the config file before authenticating.",
			common.ErrMissingConfig,
		)
	}

	oauthCfg := sheets.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenFile:    sheets.DefaultTokenFile(),
	}

	token, err := sheets.GetOrCreateToken(cmd.Context(), oauthCfg)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	slog.Info(cli.FormatSuccess("Authentication complete"))
	if token.RefreshToken != "" {
		slog.Info("Add the refresh token to your config file", "sheets.refresh_token", token.RefreshToken)
	}
	return nil
}
