package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

const (
	margin     = 15.0
	lineHeight = 6.0
	boxSize    = 4.5
	notesLines = 6
)

type rgb struct{ r, g, b int }

var (
	green = rgb{34, 139, 84}
	muted = rgb{110, 110, 110}
	ink   = rgb{30, 30, 30}
	rule  = rgb{200, 210, 200}
)

// PDFRenderer draws A4 diary pages with the core fonts. Text outside
// cp1252 is not representable and comes out as '?'.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderBooklet(w io.Writer, booklet *domain.Booklet, catalog domain.Catalog) error {
	doc := newDocument(booklet.Title)

	doc.cover(booklet)
	for i := range booklet.Pages {
		doc.page(&booklet.Pages[i], catalog)
		if doc.pdf.Err() {
			return fmt.Errorf("export: page %d: %w", booklet.Pages[i].DayNumber, doc.pdf.Error())
		}
	}

	return doc.pdf.Output(w)
}

func (r *PDFRenderer) RenderDay(w io.Writer, page *domain.BookletPage, catalog domain.Catalog) error {
	doc := newDocument("Eco Diary " + page.Date)
	doc.page(page, catalog)
	return doc.pdf.Output(w)
}

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument(title string) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCreator("eco-diary", true)
	pdf.SetTitle(title, true)

	d := &document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-margin)
		d.font("I", 8, muted)
		pdf.CellFormat(0, 5, d.tr("Eco Diary - every small step counts"), "", 0, "C", false, 0, "")
	})

	return d
}

func (d *document) font(style string, size float64, c rgb) {
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *document) cover(b *domain.Booklet) {
	pdf := d.pdf
	pdf.AddPage()

	_, pageH := pdf.GetPageSize()
	pdf.SetY(pageH / 3)

	d.font("B", 32, green)
	pdf.CellFormat(0, 14, d.tr(b.Title), "", 1, "C", false, 0, "")

	d.font("", 14, ink)
	pdf.CellFormat(0, 10, d.tr(b.Subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	d.font("", 12, muted)
	for _, f := range b.Features {
		pdf.CellFormat(0, 8, d.tr("- "+f), "", 1, "C", false, 0, "")
	}

	pdf.Ln(20)
	d.font("B", 16, green)
	pdf.CellFormat(0, 10, fmt.Sprintf("%d", b.Year), "", 1, "C", false, 0, "")
}

func (d *document) page(p *domain.BookletPage, catalog domain.Catalog) {
	pdf := d.pdf
	pdf.AddPage()

	d.font("B", 20, green)
	pdf.CellFormat(0, 10, d.tr(fmt.Sprintf("Day %d", p.DayNumber)), "", 1, "L", false, 0, "")
	d.font("", 11, muted)
	pdf.CellFormat(0, lineHeight, d.tr(p.DisplayDate), "B", 1, "L", false, 0, "")
	pdf.Ln(4)

	var goal, notes string
	if p.Entry != nil {
		goal, notes = p.Entry.Goal, p.Entry.Notes
	}

	d.heading("Today's goal")
	d.writeLines(goal, 2)

	d.heading("Eco habits")
	for _, h := range catalog {
		d.checkbox(h.Label, p.Entry.HasHabit(h.ID))
	}
	pdf.Ln(2)

	d.heading("Quote of the day")
	d.font("I", 11, ink)
	pdf.MultiCell(0, lineHeight, d.tr("\u201c"+p.Quote.Text+"\u201d"), "", "L", false)
	if p.Quote.Author != "" {
		d.font("", 10, muted)
		pdf.CellFormat(0, lineHeight, d.tr(p.Quote.Author), "", 1, "R", false, 0, "")
	}

	d.heading("Did you know?")
	d.font("", 11, ink)
	pdf.MultiCell(0, lineHeight, d.tr(p.Fact), "", "L", false)

	d.heading("Tip")
	d.font("", 11, ink)
	pdf.MultiCell(0, lineHeight, d.tr(p.Tip), "", "L", false)

	d.heading("Notes")
	d.writeLines(notes, notesLines)
}

func (d *document) heading(text string) {
	d.pdf.Ln(3)
	d.font("B", 12, green)
	d.pdf.CellFormat(0, 7, d.tr(text), "", 1, "L", false, 0, "")
}

// writeLines prints text over ruled lines and pads with empty ruled lines
// up to minLines so the page can be filled in by hand.
func (d *document) writeLines(text string, minLines int) {
	pdf := d.pdf
	d.font("", 11, ink)

	var lines []string
	if strings.TrimSpace(text) != "" {
		width, _ := pdf.GetPageSize()
		lines = pdf.SplitText(text, width-2*margin)
	}
	for len(lines) < minLines {
		lines = append(lines, "")
	}

	pdf.SetDrawColor(rule.r, rule.g, rule.b)
	for _, l := range lines {
		pdf.CellFormat(0, lineHeight+1, d.tr(l), "B", 1, "L", false, 0, "")
	}
}

func (d *document) checkbox(label string, checked bool) {
	pdf := d.pdf
	x, y := pdf.GetXY()
	top := y + (lineHeight-boxSize)/2

	pdf.SetDrawColor(green.r, green.g, green.b)
	pdf.SetLineWidth(0.3)
	pdf.Rect(x, top, boxSize, boxSize, "D")
	if checked {
		pdf.Line(x+0.8, top+boxSize/2, x+boxSize/2.4, top+boxSize-0.8)
		pdf.Line(x+boxSize/2.4, top+boxSize-0.8, x+boxSize-0.6, top+0.6)
	}
	pdf.SetLineWidth(0.2)

	pdf.SetX(x + boxSize + 3)
	d.font("", 11, ink)
	pdf.CellFormat(0, lineHeight, d.tr(label), "", 1, "L", false, 0, "")
}
