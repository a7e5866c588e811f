package curveplate

import (
	"fmt"
	"math"
)

// spiralTol is the acceptance tolerance, relative to the spiral length, for
// the integration refinement check: the endpoint computed at SpiralSamples
// intervals must agree with the endpoint computed at half that density.
const spiralTol = 1e-9

// spiralSubsteps is the number of Simpson steps per sample interval. Fixed,
// like the sample count, so integration is deterministic.
const spiralSubsteps = 8

// SpiralSeg is an Euler spiral (clothoid) boundary segment: a curve whose
// curvature varies linearly with arc length. It is the transition between
// straight track (curvature 0) and a constant-radius curve.
//
// Because the clothoid has no elementary closed form, the segment stores a
// fixed list of integrated position samples alongside its analytic
// descriptor. Downstream offsetting works on the sample list; the descriptor
// is kept for verification and reporting.
type SpiralSeg struct {
	// StartCurvature and EndCurvature are the signed-magnitude curvatures
	// at the two ends. Curvature varies linearly in between.
	StartCurvature float64
	EndCurvature   float64

	// ArcLen is the total arc length of the segment.
	ArcLen float64

	// Direction is the chirality of the spiral.
	Direction Direction

	samples  []Point   // SpiralSamples+1 integrated positions
	headings []float64 // signed tangent angle at each sample
}

func (SpiralSeg) isSegment() {}

// newSpiralSeg integrates an Euler spiral of the given length whose
// curvature rises from 0 to 1/radius, in the left-handed construction, then
// mirrors it for Right. The heading at arc length s is
//
//	theta(s) = s*s / (2 * radius * length)
//
// and the position is the integral of (cos theta, sin theta) from 0 to s.
// Each integration step uses Simpson's rule on a fixed grid so the result is
// deterministic for identical inputs.
func newSpiralSeg(radius, length float64, dir Direction) (SpiralSeg, error) {
	samples, headings := integrateSpiral(radius, length, SpiralSamples)

	// Refinement acceptance check: the same endpoint at half the density
	// must agree within tolerance, otherwise the sample grid is too coarse
	// for these parameters and the result is reported, not approximated.
	coarse, _ := integrateSpiral(radius, length, SpiralSamples/2)
	tol := spiralTol * math.Max(1, length)
	if !samples[len(samples)-1].Approx(coarse[len(coarse)-1], tol) {
		return SpiralSeg{}, fmt.Errorf("%w: radius=%g length=%g", ErrIntegrationDiverged, radius, length)
	}

	if dir == Right {
		for i := range samples {
			samples[i] = samples[i].MirrorY()
			headings[i] = -headings[i]
		}
	}

	return SpiralSeg{
		StartCurvature: 0,
		EndCurvature:   1 / radius,
		ArcLen:         length,
		Direction:      dir,
		samples:        samples,
		headings:       headings,
	}, nil
}

// integrateSpiral integrates the left-handed clothoid over n intervals and
// returns n+1 position samples with their headings.
func integrateSpiral(radius, length float64, n int) ([]Point, []float64) {
	theta := func(s float64) float64 {
		return s * s / (2 * radius * length)
	}

	samples := make([]Point, n+1)
	headings := make([]float64, n+1)
	samples[0] = Point{}
	headings[0] = 0

	h := length / float64(n) / spiralSubsteps
	var x, y float64
	for i := 1; i <= n; i++ {
		base := float64(i-1) * length / float64(n)
		for j := 0; j < spiralSubsteps; j++ {
			s0 := base + float64(j)*h
			t0, tm, t1 := theta(s0), theta(s0+h/2), theta(s0+h)
			x += h / 6 * (math.Cos(t0) + 4*math.Cos(tm) + math.Cos(t1))
			y += h / 6 * (math.Sin(t0) + 4*math.Sin(tm) + math.Sin(t1))
		}
		samples[i] = Point{X: x, Y: y}
		headings[i] = theta(float64(i) * length / float64(n))
	}
	return samples, headings
}

// offsetSpiralSeg builds the parallel curve of a spiral from an offset
// sample list. The headings are shared with the source segment: the tangent
// of a parallel curve is parallel to the tangent of the original at the
// corresponding parameter value.
func offsetSpiralSeg(src SpiralSeg, samples []Point, endCurvature float64) SpiralSeg {
	arcLen := 0.0
	for i := 1; i < len(samples); i++ {
		arcLen += samples[i-1].Distance(samples[i])
	}
	return SpiralSeg{
		StartCurvature: src.StartCurvature,
		EndCurvature:   endCurvature,
		ArcLen:         arcLen,
		Direction:      src.Direction,
		samples:        samples,
		headings:       src.headings,
	}
}

// Curvature returns the curvature magnitude at arc length s, interpolated
// linearly along the segment.
func (sp SpiralSeg) Curvature(s float64) float64 {
	return sp.StartCurvature + (sp.EndCurvature-sp.StartCurvature)*s/sp.ArcLen
}

// EndRadius returns the radius of curvature at the far end.
func (sp SpiralSeg) EndRadius() float64 {
	return 1 / sp.EndCurvature
}

// Samples returns the integrated position samples.
// The returned slice is the segment's backing store and must not be modified.
func (sp SpiralSeg) Samples() []Point { return sp.samples }

// Headings returns the signed tangent angle at each sample.
// The returned slice is the segment's backing store and must not be modified.
func (sp SpiralSeg) Headings() []float64 { return sp.headings }

// Start returns the first point of the spiral.
func (sp SpiralSeg) Start() Point { return sp.samples[0] }

// End returns the last point of the spiral.
func (sp SpiralSeg) End() Point { return sp.samples[len(sp.samples)-1] }

// StartTangent returns the unit tangent at the start.
func (sp SpiralSeg) StartTangent() Vec2 {
	return tangentFromHeading(sp.headings[0])
}

// EndTangent returns the unit tangent at the end.
func (sp SpiralSeg) EndTangent() Vec2 {
	return tangentFromHeading(sp.headings[len(sp.headings)-1])
}

// Length returns the total arc length.
func (sp SpiralSeg) Length() float64 { return sp.ArcLen }

// Flatten returns a copy of the sample polyline.
func (sp SpiralSeg) Flatten() []Point {
	pts := make([]Point, len(sp.samples))
	copy(pts, sp.samples)
	return pts
}

func tangentFromHeading(theta float64) Vec2 {
	return Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}
