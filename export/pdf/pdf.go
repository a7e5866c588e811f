// Package pdf serializes template outlines to print-ready PDF documents.
//
// The page size and placement come from internal/paper; the outline is drawn
// as a closed path with an optional border and title block carrying the
// effective print scale, so a scaled-down drawing cannot be mistaken for a
// full-size one.
package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/curveplate/curveplate"
	"github.com/curveplate/curveplate/internal/paper"
)

// Options configures one PDF document.
type Options struct {
	// Layout places the outline on the page.
	Layout paper.Layout

	// Name labels the template in the title block.
	Name string

	// TitleBlock adds a page border and a title block with the template
	// name, gauge and print scale.
	TitleBlock bool

	// Now overrides the title block timestamp; zero means time.Now.
	Now time.Time
}

// Write serializes the outline to w as a single-page PDF.
func Write(w io.Writer, outline *curveplate.Outline, opts Options) error {
	if outline == nil {
		return fmt.Errorf("pdf: nil outline")
	}

	l := opts.Layout
	curveplate.Logger().Debug("pdf export",
		"name", opts.Name, "paper", l.Paper.Name, "scale", l.Scale)

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: l.PageWidth(), Ht: l.PageHeight()},
	})
	doc.SetTitle(opts.Name, true)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetLineWidth(0.3)
	for i, p := range outline.Polygon() {
		p = l.Map(p)
		if i == 0 {
			doc.MoveTo(p.X, p.Y)
			continue
		}
		doc.LineTo(p.X, p.Y)
	}
	doc.ClosePath()
	doc.DrawPath("D")

	if opts.TitleBlock {
		drawTitleBlock(doc, outline, opts)
	}
	return doc.Output(w)
}

func drawTitleBlock(doc *fpdf.Fpdf, outline *curveplate.Outline, opts Options) {
	l := opts.Layout
	pw, ph := l.PageWidth(), l.PageHeight()
	m := l.Margin / 2

	doc.SetLineWidth(0.2)
	doc.Rect(m, m, pw-2*m, ph-2*m, "D")

	const blockW, blockH = 70.0, 14.0
	x := pw - m - blockW
	y := ph - m - blockH
	doc.Rect(x, y, blockW, blockH, "D")
	doc.Line(x, y+blockH/2, x+blockW, y+blockH/2)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	name := opts.Name
	if name == "" {
		name = "template"
	}

	doc.SetFont("Helvetica", "", 8)
	doc.Text(x+2, y+5, fmt.Sprintf("%s  gauge %gmm", name, outline.Gauge))
	doc.Text(x+2, y+12, fmt.Sprintf("scale %s  %s  %s",
		scaleLabel(l.Scale), l.Paper.Name, now.Format("2006-01-02")))
}

// scaleLabel formats a print scale as a drawing ratio, e.g. 1:1 or 1:2.5.
func scaleLabel(scale float64) string {
	if scale >= 1 {
		return "1:1"
	}
	return fmt.Sprintf("1:%.3g", 1/scale)
}
