// Package paper provides page sizes and template placement for the 2D
// exporters: choosing a paper size, orienting it, and mapping template
// coordinates (millimetres, y up) onto page coordinates (millimetres, y
// down, origin top-left).
package paper

import (
	"fmt"
	"strings"

	"github.com/curveplate/curveplate"
)

// Size is a paper size in portrait orientation, millimetres.
type Size struct {
	Name   string
	Width  float64
	Height float64
}

// Standard sizes.
var (
	A4     = Size{Name: "A4", Width: 210, Height: 297}
	A3     = Size{Name: "A3", Width: 297, Height: 420}
	A2     = Size{Name: "A2", Width: 420, Height: 594}
	A1     = Size{Name: "A1", Width: 594, Height: 841}
	A0     = Size{Name: "A0", Width: 841, Height: 1189}
	Letter = Size{Name: "Letter", Width: 215.9, Height: 279.4}
)

// sizes is ordered smallest to largest; Auto picks the first that fits.
var sizes = []Size{A4, A3, A2, A1, A0}

// DefaultMargin is the default clear border around the template, mm.
const DefaultMargin = 10

// Parse returns the named paper size, case-insensitive.
func Parse(name string) (Size, error) {
	for _, s := range append(sizes, Letter) {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Size{}, fmt.Errorf("paper: unknown size %q", name)
}

// Layout places a template on one page: the chosen paper, its orientation,
// and the scale applied to fit the template in the printable area. Scale 1
// means the template prints at full size.
type Layout struct {
	Paper     Size
	Landscape bool
	Margin    float64
	Scale     float64

	transform curveplate.Matrix
}

// PageWidth returns the oriented page width.
func (l Layout) PageWidth() float64 {
	if l.Landscape {
		return l.Paper.Height
	}
	return l.Paper.Width
}

// PageHeight returns the oriented page height.
func (l Layout) PageHeight() float64 {
	if l.Landscape {
		return l.Paper.Width
	}
	return l.Paper.Height
}

// Map transforms a template point to page coordinates.
func (l Layout) Map(p curveplate.Point) curveplate.Point {
	return l.transform.TransformPoint(p)
}

// Fit places a template with the given bounds on the given paper, centered,
// choosing the orientation that needs less scaling and scaling down only
// when the template exceeds the printable area.
func Fit(bounds curveplate.Rect, size Size, margin float64) Layout {
	w, h := bounds.Width(), bounds.Height()

	// Landscape when the template is wider than tall and the rotated page
	// fits it at a larger scale.
	landscape := scaleFor(w, h, size.Height, size.Width, margin) >
		scaleFor(w, h, size.Width, size.Height, margin)

	l := Layout{Paper: size, Landscape: landscape, Margin: margin}
	pw, ph := l.PageWidth(), l.PageHeight()
	l.Scale = scaleFor(w, h, pw, ph, margin)

	sw, sh := w*l.Scale, h*l.Scale
	offX := (pw - sw) / 2
	offY := (ph - sh) / 2

	// Template frame is y-up, page frame is y-down with origin top-left.
	l.transform = curveplate.Translate(
		offX-bounds.Min.X*l.Scale,
		ph-offY+bounds.Min.Y*l.Scale,
	).Multiply(curveplate.Scale(l.Scale, -l.Scale))
	return l
}

// Auto places the template on the smallest standard paper that holds it at
// full size, falling back to A0 scaled down when nothing does.
func Auto(bounds curveplate.Rect, margin float64) Layout {
	for _, size := range sizes {
		l := Fit(bounds, size, margin)
		if l.Scale >= 1 {
			return l
		}
	}
	return Fit(bounds, A0, margin)
}

// scaleFor returns the scale (capped at 1) at which a w-by-h template fits
// the printable area of a pw-by-ph page.
func scaleFor(w, h, pw, ph, margin float64) float64 {
	availW := pw - 2*margin
	availH := ph - 2*margin
	if availW <= 0 || availH <= 0 || w <= 0 || h <= 0 {
		return 1
	}
	scale := 1.0
	if w*scale > availW {
		scale = availW / w
	}
	if h*scale > availH {
		scale = availH / h
	}
	return scale
}
