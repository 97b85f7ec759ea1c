package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/assettrack/asset-track-api/internal/domain"
)

const (
	pageMargin = 30
	rowHeight  = 20
)

var columns = []struct {
	header string
	width  float64
}{
	{"ID", 40},
	{"Category", 100},
	{"Name", 120},
	{"Serial Number", 100},
	{"Employee Name", 120},
	{"Submitted By", 100},
	{"Created At", 120},
}

// Render writes the merged history as a landscape A4 table. A new page
// starts whenever the next row would run past the bottom margin.
func Render(w io.Writer, entries []domain.HistoryEntry) error {
	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, "Asset History Report", "", 1, "C", false, 0, "")
	pdf.Ln(12)

	_, pageHeight := pdf.GetPageSize()
	bottom := pageHeight - pageMargin

	y := pdf.GetY()
	writeHeader(pdf, y)
	y += rowHeight

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range entries {
		if y+rowHeight > bottom {
			pdf.AddPage()
			y = pageMargin
			writeHeader(pdf, y)
			y += rowHeight
			pdf.SetFont("Helvetica", "", 10)
		}
		writeRow(pdf, y, entry)
		y += rowHeight
	}

	return pdf.Output(w)
}

func writeHeader(pdf *gofpdf.Fpdf, y float64) {
	pdf.SetFont("Helvetica", "B", 10)
	x := float64(pageMargin)
	for _, col := range columns {
		pdf.SetXY(x, y)
		pdf.CellFormat(col.width, rowHeight, col.header, "", 0, "L", false, 0, "")
		x += col.width
	}
}

func writeRow(pdf *gofpdf.Fpdf, y float64, entry domain.HistoryEntry) {
	cells := []string{
		fmt.Sprintf("%d", entry.ID),
		entry.Category,
		orDash(entry.Name),
		orDash(deref(entry.SerialNumber)),
		orDash(deref(entry.EmployeeName)),
		orDash(entry.SubmittedBy),
		entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
	x := float64(pageMargin)
	for i, cell := range cells {
		pdf.SetXY(x, y)
		pdf.CellFormat(columns[i].width, rowHeight, cell, "", 0, "L", false, 0, "")
		x += columns[i].width
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
