package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/paisacalc/paisa/pkg/moneyfmt"
)

// pdfText converts UTF-8 text to the Latin-1 the standard PDF fonts expect.
// The rupee sign has no Latin-1 slot, so it is spelled out.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs ")
}

// SchedulePDF writes a schedule table report for one calculation.
type SchedulePDF struct {
	Title   string
	Summary Summary
	Header  []string
	Rows    [][]string
}

// SWPSchedulePDF builds the month-by-month withdrawal report.
func SWPSchedulePDF(result domain.SWPResult) SchedulePDF {
	rows := make([][]string, 0, len(result.Schedule))
	for _, m := range result.Schedule {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Month),
			moneyfmt.Rupees(m.InterestEarned),
			moneyfmt.Rupees(m.Withdrawal),
			moneyfmt.Rupees(m.Balance),
		})
	}
	return SchedulePDF{
		Title:   "Systematic Withdrawal Plan",
		Summary: Summarize("swp", result),
		Header:  []string{"Month", "Interest", "Withdrawal", "Balance"},
		Rows:    rows,
	}
}

// YearSchedulePDF builds a year-wise accumulation report (SSY, EPF).
func YearSchedulePDF(title, product string, result any, schedule []domain.ScheduleRow) SchedulePDF {
	rows := make([][]string, 0, len(schedule))
	for _, y := range schedule {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Period),
			moneyfmt.Rupees(y.Credit),
			moneyfmt.Rupees(y.Balance),
		})
	}
	return SchedulePDF{
		Title:   title,
		Summary: Summarize(product, result),
		Header:  []string{"Year", "Deposits", "Balance"},
		Rows:    rows,
	}
}

// Write renders the report as an A4 PDF.
func (r SchedulePDF) Write(w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, pdfText(r.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range r.Summary.Lines {
		pdf.CellFormat(60, 6, pdfText(line.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, pdfText(line.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if len(r.Rows) > 0 {
		colWidth := 190.0 / float64(len(r.Header))

		pdf.SetFont("Helvetica", "B", 9)
		for _, h := range r.Header {
			pdf.CellFormat(colWidth, 7, pdfText(h), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, row := range r.Rows {
			for _, cell := range row {
				pdf.CellFormat(colWidth, 6, pdfText(cell), "1", 0, "R", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	return pdf.Output(w)
}
