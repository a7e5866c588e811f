// Package svg serializes template outlines to SVG cutting drawings.
//
// The drawing is emitted in page millimetres via the layout computed by
// internal/paper, with the template outline as a single closed path and an
// optional border and title block.
package svg

import (
	"fmt"
	"io"
	"strings"
	"time"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/curveplate/curveplate"
	"github.com/curveplate/curveplate/internal/paper"
)

const (
	outlineStyle = "fill:none;stroke:black;stroke-width:0.3"
	borderStyle  = "fill:none;stroke:black;stroke-width:0.2"
	textStyle    = "font-family:sans-serif;font-size:3.5px;fill:black"
)

// Options configures one SVG drawing.
type Options struct {
	// Layout places the outline on the page.
	Layout paper.Layout

	// Name labels the template in the title block.
	Name string

	// TitleBlock adds a page border and a title block with the template
	// name, gauge and print scale.
	TitleBlock bool

	// Now overrides the title block timestamp; zero means time.Now.
	// Fixing it keeps test output reproducible.
	Now time.Time
}

// Write serializes the outline to w as a complete SVG document.
func Write(w io.Writer, outline *curveplate.Outline, opts Options) error {
	if outline == nil {
		return fmt.Errorf("svg: nil outline")
	}

	l := opts.Layout
	curveplate.Logger().Debug("svg export",
		"name", opts.Name, "paper", l.Paper.Name, "scale", l.Scale)

	canvas := svgo.New(w)
	canvas.Start(l.PageWidth(), l.PageHeight())
	canvas.Path(pathData(outline, l), outlineStyle)
	if opts.TitleBlock {
		drawTitleBlock(canvas, outline, opts)
	}
	canvas.End()
	return nil
}

// pathData builds the outline's closed polygon as an SVG path in page
// coordinates.
func pathData(outline *curveplate.Outline, l paper.Layout) string {
	var b strings.Builder
	for i, p := range outline.Polygon() {
		p = l.Map(p)
		if i == 0 {
			fmt.Fprintf(&b, "M%.4f %.4f", p.X, p.Y)
			continue
		}
		fmt.Fprintf(&b, " L%.4f %.4f", p.X, p.Y)
	}
	b.WriteString(" Z")
	return b.String()
}

func drawTitleBlock(canvas *svgo.SVG, outline *curveplate.Outline, opts Options) {
	l := opts.Layout
	pw, ph := l.PageWidth(), l.PageHeight()
	m := l.Margin / 2

	canvas.Rect(m, m, pw-2*m, ph-2*m, borderStyle)

	// Title block in the bottom-right corner.
	const blockW, blockH = 70.0, 14.0
	x := pw - m - blockW
	y := ph - m - blockH
	canvas.Rect(x, y, blockW, blockH, borderStyle)
	canvas.Line(x, y+blockH/2, x+blockW, y+blockH/2, borderStyle)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	name := opts.Name
	if name == "" {
		name = "template"
	}
	canvas.Text(x+2, y+5, fmt.Sprintf("%s  gauge %gmm", name, outline.Gauge), textStyle)
	canvas.Text(x+2, y+12, fmt.Sprintf("scale %s  %s  %s",
		scaleLabel(l.Scale), l.Paper.Name, now.Format("2006-01-02")), textStyle)
}

// scaleLabel formats a print scale as a drawing ratio, e.g. 1:1 or 1:2.5.
func scaleLabel(scale float64) string {
	if scale >= 1 {
		return "1:1"
	}
	return fmt.Sprintf("1:%.3g", 1/scale)
}
