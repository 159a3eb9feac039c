// Package printmenu lays the menu out as a printable A4 PDF: a coloured
// header band, pizzas in the left column and beverages in the right. Each
// column flows onto further pages on its own.
package printmenu

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/ziadkadry99/pizzeria/internal/render"
)

// Page geometry in millimetres.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 18.0
	headerHeight = 32.0
	columnGap    = 8.0
	indent       = 5.0
	footerHeight = 12.0
)

// Options holds the text printed around the menu.
type Options struct {
	Title   string
	Tagline string
	Contact string
}

type rgb struct{ r, g, b int }

var (
	brand   = rgb{0xd8, 0x43, 0x15}
	ink     = rgb{0x21, 0x21, 0x21}
	muted   = rgb{0x75, 0x75, 0x75}
	footing = rgb{0x42, 0x42, 0x42}
)

// Write renders the menu from r to w. It returns the number of pages.
func Write(w io.Writer, r *render.Renderer, opts Options) (int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("pizzeria", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	drawHeader(pdf, tr, opts)

	width := (pageWidth - 2*margin - columnGap) / 2
	top := headerHeight + 12

	pizzas := &column{pdf: pdf, tr: tr, x: margin, width: width, y: top, page: 1}
	pizzas.heading("Pizze", 18)
	for _, card := range r.Menu(render.FilterAll).Cards {
		pizzas.pizza(card)
	}

	drinks := &column{pdf: pdf, tr: tr, x: margin + width + columnGap, width: width, y: top, page: 1}
	drinks.heading("Bevande", 18)
	for _, section := range r.Beverages() {
		if len(section.Rows) == 0 {
			continue
		}
		drinks.heading(section.Title, 12)
		for _, row := range section.Rows {
			drinks.beverage(row)
		}
		drinks.y += 3
	}

	pages := pdf.PageCount()
	for n := 1; n <= pages; n++ {
		pdf.SetPage(n)
		drawFooter(pdf, tr, opts.Contact, n, pages)
	}

	if err := pdf.Output(w); err != nil {
		return 0, fmt.Errorf("writing pdf: %w", err)
	}
	return pages, nil
}

// WriteFile renders the menu to path, creating parent directories.
func WriteFile(path string, r *render.Renderer, opts Options) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	pages, err := Write(f, r, opts)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", path, cerr)
	}
	return pages, err
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, opts Options) {
	fill(pdf, brand)
	pdf.Rect(0, 0, pageWidth, headerHeight, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetXY(0, 7)
	pdf.CellFormat(pageWidth, 12, tr(opts.Title), "", 0, "C", false, 0, "")
	if opts.Tagline != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetXY(0, 21)
		pdf.CellFormat(pageWidth, 6, tr(opts.Tagline), "", 0, "C", false, 0, "")
	}
}

func drawFooter(pdf *fpdf.Fpdf, tr func(string) string, contact string, page, pages int) {
	y := pageHeight - margin
	text(pdf, footing)
	pdf.SetFont("Helvetica", "", 9)
	if contact != "" {
		pdf.SetXY(margin, y)
		pdf.CellFormat(pageWidth-2*margin, 5, tr(contact), "", 0, "C", false, 0, "")
	}
	if pages > 1 {
		pdf.SetXY(margin, y+5)
		pdf.CellFormat(pageWidth-2*margin, 5, fmt.Sprintf("%d/%d", page, pages), "", 0, "R", false, 0, "")
	}
}

func fill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func text(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

// column is one vertical flow of blocks. A block never splits across pages.
type column struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	x     float64
	width float64
	y     float64
	page  int
}

// reserve moves the column to the top of its next page when h does not fit
// above the footer.
func (c *column) reserve(h float64) {
	c.pdf.SetPage(c.page)
	if c.y+h <= pageHeight-margin-footerHeight {
		return
	}
	c.page++
	if c.page > c.pdf.PageCount() {
		c.pdf.SetPage(c.pdf.PageCount())
		c.pdf.AddPage()
	}
	c.pdf.SetPage(c.page)
	c.y = margin
}

func (c *column) heading(title string, size float64) {
	h := size * 0.5
	c.reserve(h + 4)
	text(c.pdf, ink)
	c.pdf.SetFont("Helvetica", "B", size)
	c.pdf.SetXY(c.x, c.y)
	c.pdf.CellFormat(c.width, h, c.tr(title), "", 0, "L", false, 0, "")
	c.y += h + 3
}

func (c *column) pizza(card render.Card) {
	c.pdf.SetFont("Helvetica", "", 10)
	lines := c.pdf.SplitText(c.tr(card.Ingredients), c.width-indent)
	c.reserve(6 + 4.5 + float64(len(lines))*4.5 + 4)

	text(c.pdf, ink)
	c.pdf.SetFont("Helvetica", "B", 12)
	c.pdf.SetXY(c.x, c.y)
	c.pdf.CellFormat(c.width, 6, c.tr(card.Name), "", 0, "L", false, 0, "")
	c.pdf.SetXY(c.x, c.y)
	c.pdf.CellFormat(c.width, 6, c.tr(card.Price), "", 0, "R", false, 0, "")
	c.y += 6

	text(c.pdf, brand)
	c.pdf.SetFont("Helvetica", "I", 9)
	c.pdf.SetXY(c.x+indent, c.y)
	c.pdf.CellFormat(c.width-indent, 4.5, c.tr(card.CategoryLabel), "", 0, "L", false, 0, "")
	c.y += 4.5

	text(c.pdf, muted)
	c.pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		c.pdf.SetXY(c.x+indent, c.y)
		c.pdf.CellFormat(c.width-indent, 4.5, line, "", 0, "L", false, 0, "")
		c.y += 4.5
	}
	c.y += 4
}

func (c *column) beverage(row render.BeverageRow) {
	c.reserve(6)
	text(c.pdf, ink)
	c.pdf.SetFont("Helvetica", "", 11)
	c.pdf.SetXY(c.x, c.y)
	c.pdf.CellFormat(c.width, 6, c.tr(row.Name), "", 0, "L", false, 0, "")
	c.pdf.SetXY(c.x, c.y)
	c.pdf.CellFormat(c.width, 6, c.tr(row.Price), "", 0, "R", false, 0, "")
	c.y += 6
}
