package curveplate

import (
	"fmt"
	"math"
	"strings"
)

// Fixed flattening densities. These are deliberately constants rather than
// options: identical parameters must always produce bit-identical outlines,
// both for reproducible cutting files and for stable test fixtures.
const (
	// ArcSteps is the number of chords used when flattening a circular arc
	// to a polyline.
	ArcSteps = 64

	// SpiralSamples is the number of intervals sampled along an Euler
	// spiral. The sample list is stored on the segment because the outer
	// boundary is derived from it point by point.
	SpiralSamples = 128
)

// Direction indicates which way a curve or transition turns, viewed along
// the initial tangent.
type Direction int

const (
	// Left turns counter-clockwise, toward +y.
	Left Direction = iota + 1
	// Right turns clockwise, toward -y.
	Right
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a user-supplied direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("curveplate: unknown direction %q (want left or right)", s)
}

// Segment is one piece of a boundary curve: a straight line, a circular arc,
// or an Euler spiral. The set is closed; consumers switch exhaustively over
// the three concrete types. Segments are immutable value objects.
type Segment interface {
	isSegment()

	// Start returns the first point of the segment.
	Start() Point
	// End returns the last point of the segment.
	End() Point
	// StartTangent returns the unit tangent at the start, pointing along
	// the direction of travel.
	StartTangent() Vec2
	// EndTangent returns the unit tangent at the end.
	EndTangent() Vec2
	// Length returns the arc length of the segment.
	Length() float64
	// Flatten returns the segment as a polyline including both endpoints,
	// at the fixed density for its type.
	Flatten() []Point
}

// -------------------------------------------------------------------
// LineSeg
// -------------------------------------------------------------------

// LineSeg is a straight boundary segment from P0 to P1.
type LineSeg struct {
	P0, P1 Point
}

func (LineSeg) isSegment() {}

// Start returns the first point of the segment.
func (l LineSeg) Start() Point { return l.P0 }

// End returns the last point of the segment.
func (l LineSeg) End() Point { return l.P1 }

// StartTangent returns the unit direction from P0 to P1.
func (l LineSeg) StartTangent() Vec2 { return l.P1.Sub(l.P0).Normalize() }

// EndTangent returns the unit direction from P0 to P1.
func (l LineSeg) EndTangent() Vec2 { return l.StartTangent() }

// Length returns the distance from P0 to P1.
func (l LineSeg) Length() float64 { return l.P0.Distance(l.P1) }

// Flatten returns the two endpoints.
func (l LineSeg) Flatten() []Point { return []Point{l.P0, l.P1} }

// -------------------------------------------------------------------
// ArcSeg
// -------------------------------------------------------------------

// ArcSeg is a circular boundary segment. It is traversed from StartAngle to
// EndAngle around Center; the angles are signed so that EndAngle > StartAngle
// for a Left (counter-clockwise) arc and EndAngle < StartAngle for a Right
// (clockwise) arc.
type ArcSeg struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Direction  Direction
}

func (ArcSeg) isSegment() {}

// Sweep returns the signed angle traversed by the arc.
func (a ArcSeg) Sweep() float64 { return a.EndAngle - a.StartAngle }

// Eval returns the point at fraction t of the arc, t in [0, 1].
func (a ArcSeg) Eval(t float64) Point {
	angle := a.StartAngle + t*a.Sweep()
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// Tangent returns the unit tangent at fraction t, pointing along the
// direction of travel.
func (a ArcSeg) Tangent(t float64) Vec2 {
	angle := a.StartAngle + t*a.Sweep()
	tan := Vec2{X: -math.Sin(angle), Y: math.Cos(angle)}
	if a.Sweep() < 0 {
		return tan.Neg()
	}
	return tan
}

// Start returns the first point of the arc.
func (a ArcSeg) Start() Point { return a.Eval(0) }

// End returns the last point of the arc.
func (a ArcSeg) End() Point { return a.Eval(1) }

// StartTangent returns the unit tangent at the start.
func (a ArcSeg) StartTangent() Vec2 { return a.Tangent(0) }

// EndTangent returns the unit tangent at the end.
func (a ArcSeg) EndTangent() Vec2 { return a.Tangent(1) }

// Length returns the arc length, radius times the swept angle.
func (a ArcSeg) Length() float64 { return a.Radius * math.Abs(a.Sweep()) }

// Flatten returns the arc as a polyline of ArcSteps chords.
func (a ArcSeg) Flatten() []Point {
	pts := make([]Point, ArcSteps+1)
	for i := 0; i <= ArcSteps; i++ {
		pts[i] = a.Eval(float64(i) / ArcSteps)
	}
	return pts
}
