package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"navigator/internal/app/ds"
)

const (
	Filename    = "BBW_Lizenzuebersicht.pdf"
	ContentType = "application/pdf"

	title      = "BBW Lizenz-Navigator"
	footerText = "BBW Winterthur - Lizenz-Navigator"
	allTools   = "Alle Tools"

	margin     = 10.0
	lineHeight = 5.0
	cellPad    = 1.0

	headerHeight = 7.0
)

type column struct {
	header string
	width  float64
	value  func(ds.Tool) string
}

var columns = []column{
	{"Tool", 38, func(t ds.Tool) string { return t.Name }},
	{"Tooltyp", 34, func(t ds.Tool) string { return t.Type }},
	{"Lizenzart", 55, licenseText},
	{"KI", 14, func(t ds.Tool) string { return yesNo(t.HasAI) }},
	{"Lernende", 20, func(t ds.Tool) string { return yesNo(t.ForStudents) }},
	{"Lehrpersonen", 26, func(t ds.Tool) string { return yesNo(t.ForTeachers) }},
	{"Funktionen", 90, func(t ds.Tool) string { return t.Functions }},
}

// Report is the content of one exported license overview.
type Report struct {
	Tools []ds.Tool
	// Caption lists the active filters; empty means the whole catalog.
	Caption string
	Date    time.Time
}

// Render writes r as a landscape A4 PDF to w.
func Render(w io.Writer, r Report) error {
	pdf := build(r)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func build(r Report) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s | Seite %d von {nb}", footerText, pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	writeHeading(pdf, tr, r)
	writeTableHeader(pdf, tr)

	_, pageHeight := pdf.GetPageSize()
	limit := pageHeight - margin - 8
	// y below the table header on continuation pages
	pageTop := margin + headerHeight

	for i, t := range r.Tools {
		cells := make([][][]byte, len(columns))
		for c, col := range columns {
			cells[c] = pdf.SplitLines([]byte(tr(col.value(t))), col.width-2*cellPad)
		}

		// Rows taller than the remaining space move to a new page. Rows taller
		// than a whole page are split across pages.
		for {
			height := rowHeight(cells)
			if pdf.GetY()+height <= limit {
				writeRow(pdf, cells, height, i%2 == 1)
				break
			}
			fit := int((limit - pdf.GetY() - 2*cellPad) / lineHeight)
			if pageTop+height <= limit || fit < 1 {
				pdf.AddPage()
				writeTableHeader(pdf, tr)
				continue
			}
			var head [][][]byte
			head, cells = splitCells(cells, fit)
			writeRow(pdf, head, rowHeight(head), i%2 == 1)
			pdf.AddPage()
			writeTableHeader(pdf, tr)
		}
	}

	return pdf
}

func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, r Report) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")

	caption := r.Caption
	if caption == "" {
		caption = allTools
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, tr("Filter: "+caption), "", 1, "L", false, 0, "")

	noun := "Tools"
	if len(r.Tools) == 1 {
		noun = "Tool"
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Stand: %s | %d %s", r.Date.Format("02.01.2006"), len(r.Tools), noun)), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func writeTableHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0, 70, 127)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(200, 200, 200)
	for _, col := range columns {
		pdf.CellFormat(col.width, headerHeight, tr(col.header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
}

func rowHeight(cells [][][]byte) float64 {
	lines := 1
	for _, c := range cells {
		if len(c) > lines {
			lines = len(c)
		}
	}
	return float64(lines)*lineHeight + 2*cellPad
}

// splitCells cuts every column after n lines.
func splitCells(cells [][][]byte, n int) (head, tail [][][]byte) {
	head = make([][][]byte, len(cells))
	tail = make([][][]byte, len(cells))
	for c, lines := range cells {
		k := min(n, len(lines))
		head[c], tail[c] = lines[:k], lines[k:]
	}
	return head, tail
}

func writeRow(pdf *fpdf.Fpdf, cells [][][]byte, height float64, shaded bool) {
	if shaded {
		pdf.SetFillColor(242, 246, 250)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}

	x, y := pdf.GetXY()
	for c, col := range columns {
		pdf.Rect(x, y, col.width, height, "FD")
		for l, line := range cells[c] {
			pdf.SetXY(x+cellPad, y+cellPad+float64(l)*lineHeight)
			pdf.CellFormat(col.width-2*cellPad, lineHeight, string(line), "", 0, "L", false, 0, "")
		}
		x += col.width
	}
	pdf.SetXY(margin, y+height)
}

func licenseText(t ds.Tool) string {
	if t.LicenseDetail == "" {
		return t.License
	}
	return t.License + " (" + t.LicenseDetail + ")"
}

func yesNo(v bool) string {
	if v {
		return "Ja"
	}
	return "Nein"
}
