package curveplate

// Outline is the closed boundary of one template: the inner boundary curve,
// the outer boundary curve at perpendicular distance Gauge, and the two end
// caps connecting them. The loop winds inner-forward, end cap, outer-reversed,
// start cap.
type Outline struct {
	Gauge float64

	// Inner is the boundary curve nearest the template origin, traversed
	// forward from the origin.
	Inner Segment

	// Outer is the boundary curve offset outward by Gauge. It is stored in
	// the same direction as Inner and traversed in reverse during assembly.
	Outer Segment

	// StartCap connects the outer boundary start back to the origin;
	// EndCap connects the inner boundary end to the outer boundary end.
	// Both have length Gauge and are perpendicular to the local tangent.
	StartCap LineSeg
	EndCap   LineSeg
}

// Polygon returns the assembled loop as a closed polyline: the flattened
// inner boundary, the flattened outer boundary in reverse, and the starting
// point repeated to close the loop. The cap segments become the two implied
// edges between the boundary ends.
func (o *Outline) Polygon() []Point {
	inner := o.Inner.Flatten()
	outer := o.Outer.Flatten()

	pts := make([]Point, 0, len(inner)+len(outer)+1)
	pts = append(pts, inner...)
	for i := len(outer) - 1; i >= 0; i-- {
		pts = append(pts, outer[i])
	}
	pts = append(pts, inner[0])
	return pts
}

// BoundingBox returns the axis-aligned bounding box of the outline.
func (o *Outline) BoundingBox() Rect {
	return boundsOf(o.Polygon())
}

// Dimensions returns the width and height of the outline's bounding box.
func (o *Outline) Dimensions() (w, h float64) {
	bounds := o.BoundingBox()
	return bounds.Width(), bounds.Height()
}
