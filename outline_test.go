package curveplate

import (
	"math"
	"testing"
)

// pointSegDist returns the distance from p to the segment ab.
func pointSegDist(p, a, b Point) float64 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / denom
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Lerp(b, t))
}

// polylineDist returns the distance from p to the nearest point of the
// polyline.
func polylineDist(p Point, poly []Point) float64 {
	best := math.Inf(1)
	for i := 1; i < len(poly); i++ {
		if d := pointSegDist(p, poly[i-1], poly[i]); d < best {
			best = d
		}
	}
	return best
}

// segsCross reports whether the open segments (a,b) and (c,d) properly
// intersect.
func segsCross(a, b, c, d Point) bool {
	d1 := b.Sub(a).Cross(c.Sub(a))
	d2 := b.Sub(a).Cross(d.Sub(a))
	d3 := d.Sub(c).Cross(a.Sub(c))
	d4 := d.Sub(c).Cross(b.Sub(c))
	return d1*d2 < 0 && d3*d4 < 0
}

// isSimple reports whether the closed polygon (first point repeated last)
// has no self-intersections.
func isSimple(poly []Point) bool {
	n := len(poly) - 1 // edges
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // first and last edge share the start point
			}
			if segsCross(poly[i], poly[i+1], poly[j], poly[j+1]) {
				return false
			}
		}
	}
	return true
}

func buildAll(t *testing.T) map[string]*Outline {
	t.Helper()
	cases := map[string]Parameters{
		"straight":         Straight{Gauge: 16.5, Length: 200},
		"curve":            Curve{Gauge: 16.5, Radius: 500, ArcAngle: 30},
		"curve right":      Curve{Gauge: 16.5, Radius: 500, ArcAngle: 30, Direction: Right},
		"transition left":  Transition{Gauge: 16.5, Radius: 300, Length: 150, Direction: Left},
		"transition right": Transition{Gauge: 16.5, Radius: 300, Length: 150, Direction: Right},
		"narrow gauge":     Curve{Gauge: 9, Radius: 200, ArcLength: 180},
	}
	outlines := make(map[string]*Outline, len(cases))
	for name, params := range cases {
		outline, err := BuildOutline(params)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		outlines[name] = outline
	}
	return outlines
}

func TestOutline_Closure(t *testing.T) {
	for name, outline := range buildAll(t) {
		poly := outline.Polygon()
		first, last := poly[0], poly[len(poly)-1]
		if !pointsEqual(first, last, epsilon*outline.Gauge) {
			t.Errorf("%s: loop not closed: %v vs %v", name, first, last)
		}

		// Every joint is closed too: inner end -> end cap -> outer end,
		// outer start -> start cap -> inner start.
		if !pointsEqual(outline.Inner.End(), outline.EndCap.P0, epsilon) ||
			!pointsEqual(outline.EndCap.P1, outline.Outer.End(), epsilon) {
			t.Errorf("%s: end cap does not join the boundaries", name)
		}
		if !pointsEqual(outline.Outer.Start(), outline.StartCap.P0, epsilon) ||
			!pointsEqual(outline.StartCap.P1, outline.Inner.Start(), epsilon) {
			t.Errorf("%s: start cap does not join the boundaries", name)
		}
	}
}

func TestOutline_GaugeFidelity(t *testing.T) {
	// At every sample of the inner boundary, the perpendicular distance to
	// the outer boundary equals the gauge. Flattening sag limits the
	// achievable tolerance, not the offset construction itself.
	const tol = 5e-2
	for name, outline := range buildAll(t) {
		inner := outline.Inner.Flatten()
		outer := outline.Outer.Flatten()
		for i, p := range inner {
			d := polylineDist(p, outer)
			if math.Abs(d-outline.Gauge) > tol {
				t.Errorf("%s: sample %d is %v from the outer boundary, want %v",
					name, i, d, outline.Gauge)
			}
		}
	}
}

func TestOutline_CapLengths(t *testing.T) {
	for name, outline := range buildAll(t) {
		if math.Abs(outline.StartCap.Length()-outline.Gauge) > epsilon {
			t.Errorf("%s: start cap length = %v, want %v", name, outline.StartCap.Length(), outline.Gauge)
		}
		if math.Abs(outline.EndCap.Length()-outline.Gauge) > epsilon {
			t.Errorf("%s: end cap length = %v, want %v", name, outline.EndCap.Length(), outline.Gauge)
		}
	}
}

func TestOutline_Simple(t *testing.T) {
	for name, outline := range buildAll(t) {
		if !isSimple(outline.Polygon()) {
			t.Errorf("%s: outline self-intersects", name)
		}
	}
}

func TestOutline_BoundingBox(t *testing.T) {
	outline, err := BuildOutline(Straight{Gauge: 16.5, Length: 200})
	if err != nil {
		t.Fatal(err)
	}
	bounds := outline.BoundingBox()
	if !pointsEqual(bounds.Min, Pt(0, 0), epsilon) || !pointsEqual(bounds.Max, Pt(200, 16.5), epsilon) {
		t.Errorf("BoundingBox() = %v, want (0,0)-(200,16.5)", bounds)
	}
}
