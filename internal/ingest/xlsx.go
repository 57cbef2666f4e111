// Package ingest parses ledger and budget files into domain types.
// All input validation lives here: the engine downstream assumes clean,
// typed data and never re-validates it.
package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nbendourou/Money-Manager/internal/common"
	"github.com/nbendourou/Money-Manager/internal/model"
)

// Required ledger columns, as exported by the banking app.
var ledgerColumns = []string{"Date", "Compte", "Catégorie", "MAD", "Revenu/dépense"}

// descriptionColumns are joined with " - " to build the transaction
// description; the first one doubles as the category key.
var descriptionColumns = []string{"Catégorie", "Sous-catégories", "Note"}

// ReadLedger parses the transaction spreadsheet from r. The first sheet
// is used; the first row must be a header containing every required
// column. Row numbers in errors are 1-based spreadsheet rows.
func ReadLedger(r io.Reader) ([]model.Transaction, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return nil, err
	}

	header := columnIndex(rows[0])
	var missing []string
	for _, col := range ledgerColumns {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrMissingColumn, strings.Join(missing, ", "))
	}

	transactions := make([]model.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isEmptyRow(row) {
			continue
		}

		date, err := parseDate(cell(row, header["Date"]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		amount, err := parseAmount(cell(row, header["MAD"]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		account := strings.TrimSpace(cell(row, header["Compte"]))
		rawType := strings.TrimSpace(cell(row, header["Revenu/dépense"]))
		if account == "" || rawType == "" || strings.TrimSpace(cell(row, header["Catégorie"])) == "" {
			return nil, fmt.Errorf("row %d: missing values", rowNum)
		}

		var parts []string
		for _, col := range descriptionColumns {
			idx, ok := header[col]
			if !ok {
				continue
			}
			if v := strings.TrimSpace(cell(row, idx)); v != "" {
				parts = append(parts, v)
			}
		}
		description := strings.Join(parts, " - ")
		if description == "" {
			description = "Non décrit"
		}

		transactions = append(transactions, model.Transaction{
			Date:        date,
			Description: description,
			Amount:      math.Abs(amount),
			Type:        transactionType(rawType),
			Account:     account,
		})
	}

	if len(transactions) == 0 {
		return nil, common.ErrNoTransactions
	}

	slog.Info("Parsed ledger file", "transactions", len(transactions))
	return transactions, nil
}

// ReadBudget parses the annual budget spreadsheet from r. The header may
// use any column titles containing "catégorie" and "budget"; rows with
// an empty category or a non-numeric amount are skipped.
func ReadBudget(r io.Reader) (model.Budget, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return nil, err
	}

	categoryCol, budgetCol := -1, -1
	for idx, h := range rows[0] {
		lower := strings.ToLower(h)
		if categoryCol < 0 && strings.Contains(lower, "catégorie") {
			categoryCol = idx
		}
		if budgetCol < 0 && strings.Contains(lower, "budget") {
			budgetCol = idx
		}
	}
	if categoryCol < 0 || budgetCol < 0 {
		return nil, fmt.Errorf("%w: le fichier budget doit contenir les colonnes 'Catégorie' et 'Budget'", common.ErrMissingColumn)
	}

	budget := make(model.Budget)
	for _, row := range rows[1:] {
		category := strings.TrimSpace(cell(row, categoryCol))
		if category == "" {
			continue
		}
		amount, err := parseAmount(cell(row, budgetCol))
		if err != nil {
			continue
		}
		budget[category] = amount
	}

	slog.Info("Parsed budget file", "categories", len(budget))
	return budget, nil
}

// sheetRows opens the workbook and returns the rows of its first sheet.
func sheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, common.ErrEmptyWorkbook
	}
	return rows, nil
}

func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	return index
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// dateLayouts are tried in order for textual date cells.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05"}

// parseDate handles both Excel serial dates (raw numeric cells) and
// textual dates.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, common.ErrInvalidDate
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		date, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, raw)
		}
		return date.UTC().Truncate(24 * time.Hour), nil
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, raw)
}

// parseAmount accepts both dot and comma decimal separators and ignores
// grouping spaces.
func parseAmount(raw string) (float64, error) {
	cleaned := strings.NewReplacer(",", ".", " ", "", " ", "", " ", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, common.ErrInvalidAmount
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidAmount, raw)
	}
	return amount, nil
}

// transactionType maps the spreadsheet's "Revenu/dépense" column to the
// closed enum. Anything that is neither Revenu nor Sorties is spending.
func transactionType(raw string) model.TransactionType {
	switch raw {
	case string(model.TypeRevenue):
		return model.TypeRevenue
	case string(model.TypeSavings):
		return model.TypeSavings
	default:
		return model.TypeExpense
	}
}
