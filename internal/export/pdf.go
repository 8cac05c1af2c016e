// Package export renders one-shot report documents to local files.
package export

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nmtri/soquy/internal/currency"
	"github.com/nmtri/soquy/internal/report"
)

// ReportDoc is everything needed to render a breakdown report.
type ReportDoc struct {
	GeneratedAt  time.Time
	Title        string
	Period       string
	CurrencyCode string
	Result       report.BreakdownResult
}

// WritePDF renders the report as a paginated A4 document at path:
// title, period, grand total, one line per category, and a footer with
// the page number and generation timestamp. Any failure is returned to
// the caller as an error.
func WritePDF(path string, doc ReportDoc) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	generated := doc.GeneratedAt.Format("2006-01-02 15:04:05")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10,
			tr(fmt.Sprintf("Generated %s - page %d", generated, pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, tr(doc.Period), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8,
		tr(fmt.Sprintf("Total: %s", currency.Format(doc.Result.Total, doc.CurrencyCode))),
		"", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, tr("Category"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, tr("Amount"), "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, tr("Share"), "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, stat := range doc.Result.Stats {
		pdf.CellFormat(90, 7, tr(stat.Category.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(currency.Format(stat.Amount, doc.CurrencyCode)), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, tr(fmt.Sprintf("%.1f%%", stat.Percentage)), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
