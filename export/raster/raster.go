// Package raster renders template outlines to PNG preview images.
//
// Previews are for checking a template on screen before committing to a cut;
// the vector exporters remain the cutting references. Rasterization uses
// golang.org/x/image/vector.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/curveplate/curveplate"
)

// Options configures one preview image.
type Options struct {
	// PixelsPerMM is the raster resolution. Zero means 4 px/mm.
	PixelsPerMM float64

	// Padding is the clear border around the outline in millimetres.
	// Zero means 5 mm.
	Padding float64
}

// WritePNG renders the outline filled on a white background and encodes it
// as PNG to w.
func WritePNG(w io.Writer, outline *curveplate.Outline, opts Options) error {
	if outline == nil {
		return fmt.Errorf("raster: nil outline")
	}
	ppmm := opts.PixelsPerMM
	if ppmm <= 0 {
		ppmm = 4
	}
	pad := opts.Padding
	if pad <= 0 {
		pad = 5
	}

	bounds := outline.BoundingBox()
	width := int(math.Ceil((bounds.Width() + 2*pad) * ppmm))
	height := int(math.Ceil((bounds.Height() + 2*pad) * ppmm))
	curveplate.Logger().Debug("raster export", "width", width, "height", height)

	// Template frame is y-up; image frame is y-down.
	toPx := func(p curveplate.Point) (float32, float32) {
		x := (p.X - bounds.Min.X + pad) * ppmm
		y := (bounds.Max.Y - p.Y + pad) * ppmm
		return float32(x), float32(y)
	}

	r := vector.NewRasterizer(width, height)
	for i, p := range outline.Polygon() {
		x, y := toPx(p)
		if i == 0 {
			r.MoveTo(x, y)
			continue
		}
		r.LineTo(x, y)
	}
	r.ClosePath()

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range dst.Pix {
		dst.Pix[i] = 0xff
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}), image.Point{})

	return png.Encode(w, dst)
}
