package curveplate

import "math"

// AngleFromLength returns the angle in radians subtended by an arc of the
// given length at the given radius.
func AngleFromLength(length, radius float64) float64 {
	return length / radius
}

// LengthFromAngle returns the arc length spanned by the given angle in
// radians at the given radius. AngleFromLength and LengthFromAngle are exact
// inverses of each other.
func LengthFromAngle(angle, radius float64) float64 {
	return radius * angle
}

// arcBoundary builds the inner boundary arc for validated curve parameters.
// A Left curve turns counter-clockwise around a center at (0, radius); a
// Right curve is the mirror image, clockwise around (0, -radius). In both
// cases the arc starts at the origin with tangent +x.
func arcBoundary(c Curve) ArcSeg {
	theta := c.angleRad()
	if c.direction() == Right {
		return ArcSeg{
			Center:     Pt(0, -c.Radius),
			Radius:     c.Radius,
			StartAngle: math.Pi / 2,
			EndAngle:   math.Pi/2 - theta,
			Direction:  Right,
		}
	}
	return ArcSeg{
		Center:     Pt(0, c.Radius),
		Radius:     c.Radius,
		StartAngle: -math.Pi / 2,
		EndAngle:   -math.Pi/2 + theta,
		Direction:  Left,
	}
}
