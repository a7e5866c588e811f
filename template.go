package curveplate

import (
	"errors"
	"fmt"
	"math"
)

// Parameters describes one template to build. The set is closed: Straight,
// Curve and Transition. The three kinds have disjoint field sets, so they are
// modelled as a tagged variant consumed by exhaustive type switches rather
// than a type hierarchy.
type Parameters interface {
	isParameters()

	// Validate checks the parameter set and returns one of the Err*
	// sentinels (wrapped with the offending value) if it is unusable.
	Validate() error
}

// Straight describes a straight template: a rectangle of the given length
// and gauge.
type Straight struct {
	Gauge  float64 // track gauge in mm
	Length float64 // template length in mm
}

func (Straight) isParameters() {}

// Validate implements Parameters.
func (s Straight) Validate() error {
	if s.Gauge <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidGauge, s.Gauge)
	}
	if s.Length <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidLength, s.Length)
	}
	return nil
}

// Curve describes a constant-radius template. The span is given as exactly
// one of ArcAngle (degrees) or ArcLength (mm, measured along the inner
// boundary); supplying both or neither is rejected. Direction is optional
// and defaults to Left.
type Curve struct {
	Gauge     float64 // track gauge in mm
	Radius    float64 // radius to the inner boundary in mm
	ArcAngle  float64 // arc angle in degrees, exclusive with ArcLength
	ArcLength float64 // arc length in mm, exclusive with ArcAngle
	Direction Direction
}

func (Curve) isParameters() {}

// Validate implements Parameters.
func (c Curve) Validate() error {
	if c.Gauge <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidGauge, c.Gauge)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, c.Radius)
	}
	hasAngle := c.ArcAngle != 0
	hasLength := c.ArcLength != 0
	switch {
	case hasAngle && hasLength:
		return fmt.Errorf("%w: angle=%g° length=%g", ErrAmbiguousCurveSpec, c.ArcAngle, c.ArcLength)
	case !hasAngle && !hasLength:
		return ErrMissingCurveSpec
	case hasAngle && (c.ArcAngle < 0 || c.ArcAngle > 360):
		return fmt.Errorf("%w: got %g°", ErrInvalidArcAngle, c.ArcAngle)
	case hasLength && c.ArcLength < 0:
		return fmt.Errorf("%w: got %g", ErrInvalidLength, c.ArcLength)
	}
	if c.Direction != 0 && c.Direction != Left && c.Direction != Right {
		return fmt.Errorf("curveplate: invalid direction %d", int(c.Direction))
	}
	return nil
}

// angleRad returns the arc angle in radians, deriving it from the arc length
// when the angle was not supplied. Callers must have validated the curve.
func (c Curve) angleRad() float64 {
	if c.ArcAngle != 0 {
		return c.ArcAngle * math.Pi / 180
	}
	return AngleFromLength(c.ArcLength, c.Radius)
}

// direction returns the effective direction, defaulting to Left.
func (c Curve) direction() Direction {
	if c.Direction == 0 {
		return Left
	}
	return c.Direction
}

// Transition describes a clothoid template easing from straight track into a
// curve of the given end radius over the given length. Direction is
// required: unlike a circular arc, a transition template cannot be flipped
// over for the opposite hand once the outline is cut asymmetrically.
type Transition struct {
	Gauge     float64 // track gauge in mm
	Radius    float64 // radius of curvature at the far end in mm
	Length    float64 // transition length in mm
	Direction Direction
}

func (Transition) isParameters() {}

// Validate implements Parameters.
func (t Transition) Validate() error {
	if t.Gauge <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidGauge, t.Gauge)
	}
	if t.Radius <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, t.Radius)
	}
	if t.Length <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidLength, t.Length)
	}
	if t.Direction != Left && t.Direction != Right {
		return ErrMissingDirection
	}
	return nil
}

// BuildOutline validates the parameters, solves the inner boundary, offsets
// it by the gauge and assembles the closed template outline. It is a pure
// function: no state is shared between calls and identical parameters always
// produce identical outlines.
func BuildOutline(p Parameters) (*Outline, error) {
	if p == nil {
		return nil, errors.New("curveplate: nil parameters")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		inner Segment
		gauge float64
	)
	switch q := p.(type) {
	case Straight:
		gauge = q.Gauge
		inner = LineSeg{P0: Point{}, P1: Pt(q.Length, 0)}
	case Curve:
		gauge = q.Gauge
		inner = arcBoundary(q)
	case Transition:
		gauge = q.Gauge
		spiral, err := newSpiralSeg(q.Radius, q.Length, q.Direction)
		if err != nil {
			return nil, err
		}
		inner = spiral
	default:
		return nil, fmt.Errorf("curveplate: unknown parameter type %T", p)
	}

	outer := offsetBoundary(inner, gauge)
	startCap, endCap := capSegments(inner, outer)
	return &Outline{
		Gauge:    gauge,
		Inner:    inner,
		Outer:    outer,
		StartCap: startCap,
		EndCap:   endCap,
	}, nil
}

// Solid is a right prism with a template outline as cross-section,
// requested when a template is to be 3D printed or milled rather than cut
// from sheet stock.
type Solid struct {
	Outline *Outline
	Height  float64 // extrusion height in mm
}

// BuildSolid builds the template outline and wraps it with an extrusion
// height. The height is validated before any geometry is computed.
func BuildSolid(p Parameters, height float64) (*Solid, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidHeight, height)
	}
	outline, err := BuildOutline(p)
	if err != nil {
		return nil, err
	}
	return &Solid{Outline: outline, Height: height}, nil
}
