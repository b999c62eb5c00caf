package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 14.0
	rowHeight  = 6.0
)

// PDF renders records as a titled grid table. The title is the file name
// with underscores shown as spaces.
func PDF(w io.Writer, name string, generated time.Time, records []Record) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(pageMargin, 22, tr(strings.ReplaceAll(name, "_", " ")))
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(pageMargin, 30, "Generated on: "+generated.Format("2006-01-02 15:04:05"))

	header := Header(records)
	if len(header) > 0 {
		pageW, _ := pdf.GetPageSize()
		colW := (pageW - 2*pageMargin) / float64(len(header))
		pdf.SetXY(pageMargin, 35)

		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(37, 99, 235)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range header {
			pdf.CellFormat(colW, rowHeight+1, fit(pdf, tr(h), colW), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		for _, rec := range records {
			for _, key := range header {
				v, _ := rec.Get(key)
				pdf.CellFormat(colW, rowHeight, fit(pdf, tr(Cell(v)), colW), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// fit truncates s with an ellipsis so it stays inside one cell.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	max := width - 2
	if pdf.GetStringWidth(s) <= max {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > max {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
