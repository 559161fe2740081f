package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Table is a titled tabular document. Widths are in millimetres and must
// line up with Header; a nil Widths spreads columns evenly.
type Table struct {
	Title    string
	Subtitle string
	Header   []string
	Widths   []float64
	Rows     [][]string
	Footer   []string // optional totals row
}

const (
	pageWidth   = 297.0 // A4 landscape
	pageMargin  = 10.0
	rowHeight   = 7.0
	fontFamily  = "Helvetica"
	headerShade = 220
)

// Render lays the table out on A4 landscape pages and returns the PDF bytes.
// The header row is repeated on every page.
func Render(t Table) ([]byte, error) {
	if len(t.Header) == 0 {
		return nil, fmt.Errorf("pdf table has no columns")
	}
	widths := t.Widths
	if len(widths) != len(t.Header) {
		widths = evenWidths(len(t.Header))
	}

	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.SetHeaderFunc(func() {
		if doc.PageNo() == 1 {
			doc.SetFont(fontFamily, "B", 16)
			doc.CellFormat(0, 10, t.Title, "", 1, "L", false, 0, "")
			if t.Subtitle != "" {
				doc.SetFont(fontFamily, "", 11)
				doc.CellFormat(0, 8, t.Subtitle, "", 1, "L", false, 0, "")
			}
			doc.Ln(3)
		}
		writeRow(doc, t.Header, widths, "B", true)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-pageMargin)
		doc.SetFont(fontFamily, "I", 8)
		doc.CellFormat(0, 5, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "R", false, 0, "")
	})

	doc.AddPage()
	for _, row := range t.Rows {
		writeRow(doc, row, widths, "", false)
	}
	if len(t.Footer) > 0 {
		writeRow(doc, t.Footer, widths, "B", true)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(doc *gofpdf.Fpdf, cells []string, widths []float64, style string, shaded bool) {
	doc.SetFont(fontFamily, style, 9)
	if shaded {
		doc.SetFillColor(headerShade, headerShade, headerShade)
	}
	for i, w := range widths {
		value := ""
		if i < len(cells) {
			value = fitText(doc, cells[i], w-2)
		}
		align := "L"
		if i > 0 {
			align = "R"
		}
		doc.CellFormat(w, rowHeight, value, "1", 0, align, shaded, 0, "")
	}
	doc.Ln(-1)
}

// fitText truncates s with an ellipsis so it fits in width mm.
func fitText(doc *gofpdf.Fpdf, s string, width float64) string {
	if doc.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && doc.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func evenWidths(n int) []float64 {
	w := (pageWidth - 2*pageMargin) / float64(n)
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = w
	}
	return widths
}
