package report

import (
	"fmt"
	"io"
	"time"

	"github.com/signintech/gopdf"

	"github.com/nbendourou/Money-Manager/internal/common"
	"github.com/nbendourou/Money-Manager/internal/engine"
	"github.com/nbendourou/Money-Manager/internal/format"
	"github.com/nbendourou/Money-Manager/internal/model"
)

// PDF page geometry, A4 portrait in points.
const (
	pageWidth   = 595.0
	pageHeight  = 842.0
	marginLeft  = 40.0
	marginRight = 40.0
	bottomLimit = 780.0
	lineHeight  = 18.0
)

const pdfFontName = "report"

// PDFExporter renders a finance view as a PDF document. FontPath must
// point at a TTF file; gopdf cannot draw text without one.
type PDFExporter struct {
	FontPath string
}

// WritePDF renders the report to w: a KPI summary page, the budget
// analysis table and the filtered transactions. ChartImages, when
// provided, are placed one per page after the summary.
func (e *PDFExporter) WritePDF(w io.Writer, view *engine.View, chartImages []string) error {
	if e.FontPath == "" {
		return common.NewUserError(
			"PDF export requires a TTF font. Set report.font_path in the config file.",
			fmt.Errorf("pdf export: font path not set"),
		)
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFont(pdfFontName, e.FontPath); err != nil {
		return fmt.Errorf("failed to load font %s: %w", e.FontPath, err)
	}

	pdf.AddPage()
	y := e.writeHeader(&pdf)
	y = e.writeKpiBlock(&pdf, view, y)
	e.writeBudgetTable(&pdf, view.ExpenseSummaryData, y+20)

	for _, img := range chartImages {
		pdf.AddPage()
		if err := pdf.Image(img, marginLeft, 60, &gopdf.Rect{W: pageWidth - marginLeft - marginRight, H: 360}); err != nil {
			return fmt.Errorf("failed to place chart image %s: %w", img, err)
		}
	}

	e.writeTransactionsTable(&pdf, view.FilteredTransactions)

	if _, err := pdf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (e *PDFExporter) writeHeader(pdf *gopdf.GoPdf) float64 {
	pdf.SetFillColor(30, 41, 59)
	pdf.RectFromUpperLeftWithStyle(0, 0, pageWidth, 90, "F")

	pdf.SetTextColor(255, 255, 255)
	_ = pdf.SetFont(pdfFontName, "", 22)
	pdf.SetXY(marginLeft, 28)
	_ = pdf.Cell(nil, "Money Manager - Rapport Financier")

	_ = pdf.SetFont(pdfFontName, "", 11)
	pdf.SetXY(marginLeft, 58)
	_ = pdf.Cell(nil, fmt.Sprintf("Généré le %s", time.Now().Format("02/01/2006")))

	pdf.SetTextColor(30, 41, 59)
	return 120
}

func (e *PDFExporter) writeKpiBlock(pdf *gopdf.GoPdf, view *engine.View, y float64) float64 {
	pdf.SetFillColor(241, 245, 249)
	pdf.RectFromUpperLeftWithStyle(marginLeft-10, y-8, pageWidth-2*marginLeft+20, 130, "F")

	_ = pdf.SetFont(pdfFontName, "", 14)
	pdf.SetXY(marginLeft, y)
	_ = pdf.Cell(nil, "Indicateurs Clés")
	y += 24

	_ = pdf.SetFont(pdfFontName, "", 11)
	rows := []struct {
		label string
		value string
	}{
		{"Total Revenus", format.Currency(view.Kpis.TotalRevenue)},
		{"Total Dépenses", format.Currency(view.Kpis.TotalExpenses)},
		{"Total Épargne", format.Currency(view.Kpis.TotalSavings)},
		{"Solde Net", format.SignedCurrency(view.Kpis.NetBalance)},
		{"Taux d'Épargne", format.Percent(view.Kpis.SavingsRate)},
	}
	for _, row := range rows {
		pdf.SetXY(marginLeft, y)
		_ = pdf.Cell(nil, row.label)
		pdf.SetXY(250, y)
		_ = pdf.Cell(nil, row.value)
		y += lineHeight
	}
	return y + 10
}

func (e *PDFExporter) writeBudgetTable(pdf *gopdf.GoPdf, rows []model.BudgetRow, y float64) {
	_ = pdf.SetFont(pdfFontName, "", 14)
	pdf.SetXY(marginLeft, y)
	_ = pdf.Cell(nil, "Analyse Budgétaire")
	y += 24

	cols := []float64{marginLeft, 230, 340, 450}
	_ = pdf.SetFont(pdfFontName, "", 10)
	for i, h := range budgetHeaders {
		pdf.SetXY(cols[i], y)
		_ = pdf.Cell(nil, h)
	}
	y += lineHeight
	e.rule(pdf, y-4)

	for _, row := range rows {
		if y > bottomLimit {
			pdf.AddPage()
			y = 60
		}
		pdf.SetXY(cols[0], y)
		_ = pdf.Cell(nil, row.Category)
		pdf.SetXY(cols[1], y)
		_ = pdf.Cell(nil, format.Currency(row.ActualAmount))
		pdf.SetXY(cols[2], y)
		_ = pdf.Cell(nil, format.Currency(row.ProratedBudget))
		if row.Difference < 0 {
			pdf.SetTextColor(220, 38, 38)
		}
		pdf.SetXY(cols[3], y)
		_ = pdf.Cell(nil, format.SignedCurrency(row.Difference))
		pdf.SetTextColor(30, 41, 59)
		y += lineHeight
	}

	totals := sumBudgetRows(rows)
	e.rule(pdf, y-4)
	pdf.SetXY(cols[0], y)
	_ = pdf.Cell(nil, "Total")
	pdf.SetXY(cols[1], y)
	_ = pdf.Cell(nil, format.Currency(totals.actual))
	pdf.SetXY(cols[2], y)
	_ = pdf.Cell(nil, format.Currency(totals.prorated))
	pdf.SetXY(cols[3], y)
	_ = pdf.Cell(nil, format.SignedCurrency(totals.diff))
}

func (e *PDFExporter) writeTransactionsTable(pdf *gopdf.GoPdf, transactions []model.Transaction) {
	pdf.AddPage()
	y := 60.0

	_ = pdf.SetFont(pdfFontName, "", 14)
	pdf.SetXY(marginLeft, y)
	_ = pdf.Cell(nil, "Transactions")
	y += 24

	cols := []float64{marginLeft, 110, 330, 420, 490}
	headers := []string{"Date", "Description", "Montant", "Type", "Compte"}
	_ = pdf.SetFont(pdfFontName, "", 9)
	for i, h := range headers {
		pdf.SetXY(cols[i], y)
		_ = pdf.Cell(nil, h)
	}
	y += lineHeight
	e.rule(pdf, y-4)

	for _, t := range transactions {
		if y > bottomLimit {
			pdf.AddPage()
			y = 60
		}
		pdf.SetXY(cols[0], y)
		_ = pdf.Cell(nil, t.Date.Format("2006-01-02"))
		pdf.SetXY(cols[1], y)
		_ = pdf.Cell(nil, truncate(t.Description, 42))
		pdf.SetXY(cols[2], y)
		_ = pdf.Cell(nil, format.SignedCurrency(signedAmount(t)))
		pdf.SetXY(cols[3], y)
		_ = pdf.Cell(nil, displayType(t.Type))
		pdf.SetXY(cols[4], y)
		_ = pdf.Cell(nil, truncate(t.Account, 18))
		y += 14
	}
}

func (e *PDFExporter) rule(pdf *gopdf.GoPdf, y float64) {
	pdf.SetStrokeColor(148, 163, 184)
	pdf.Line(marginLeft, y, pageWidth-marginRight, y)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
