package curveplate

// offsetBoundary derives the outer boundary from the inner boundary: a
// parallel curve at perpendicular distance gauge on the outward side.
//
// For a line the normal is constant, so the outer boundary is a translated
// copy. For an arc the curvature is constant, so a concentric arc of radius
// inner+gauge preserves the separation exactly. For a spiral the curvature
// varies continuously and no global transform preserves the separation: each
// sample is offset individually along its local normal. A translated or
// scaled copy of the spiral would drift away from the true gauge everywhere
// except the endpoints.
func offsetBoundary(inner Segment, gauge float64) Segment {
	switch seg := inner.(type) {
	case LineSeg:
		n := seg.StartTangent().Perp().Mul(gauge)
		return LineSeg{P0: seg.P0.Add(n), P1: seg.P1.Add(n)}

	case ArcSeg:
		out := seg
		out.Radius = seg.Radius + gauge
		return out

	case SpiralSeg:
		samples := make([]Point, len(seg.samples))
		for i, p := range seg.samples {
			n := outwardNormal(seg.headings[i], seg.Direction)
			samples[i] = p.Add(n.Mul(gauge))
		}
		return offsetSpiralSeg(seg, samples, 1/(seg.EndRadius()+gauge))
	}
	return nil
}

// outwardNormal returns the unit normal at a point with the given tangent
// heading, pointing away from the center of curvature: the right-hand normal
// for a Left (counter-clockwise) curve and the left-hand normal for a Right
// curve. Offsetting along it increases the radius of curvature.
func outwardNormal(heading float64, dir Direction) Vec2 {
	n := tangentFromHeading(heading).Perp()
	if dir == Left {
		return n.Neg()
	}
	return n
}

// capSegments builds the two end caps closing the outline: straight segments
// of length gauge connecting corresponding boundary endpoints. Because the
// outer boundary is offset along local normals, each cap is automatically
// perpendicular to the boundary tangent at its end.
func capSegments(inner, outer Segment) (startCap, endCap LineSeg) {
	startCap = LineSeg{P0: outer.Start(), P1: inner.Start()}
	endCap = LineSeg{P0: inner.End(), P1: outer.End()}
	return startCap, endCap
}
