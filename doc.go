// Package curveplate computes cutting-template geometry for flexible
// model-railway track.
//
// # Overview
//
// A template is a flat plate used to hold flex track at an exact shape while
// it is fixed down: a straight section, a constant-radius curve, or a clothoid
// (Euler spiral) transition between straight and curved track. Given a small
// set of physical parameters (gauge, length, radius, arc angle, direction),
// the engine produces a closed, non-self-intersecting outline suitable for
// cutting, and optionally a right-prism solid for 3D output.
//
// # Quick Start
//
//	params := curveplate.Transition{
//		Gauge:     curveplate.GaugeHO,
//		Radius:    300,
//		Length:    150,
//		Direction: curveplate.Left,
//	}
//	outline, err := curveplate.BuildOutline(params)
//	if err != nil {
//		// one of the Err* validation sentinels
//	}
//	poly := outline.Polygon() // closed point loop, millimetres
//
// # Coordinate System
//
// Templates are computed in a local frame: the origin is the start of the
// inner boundary and the initial tangent points along +x. Angles are in
// radians unless a name says otherwise. All lengths are millimetres.
//
// # Determinism
//
// Every outline is computed with fixed, documented sample densities (see
// ArcSteps and SpiralSamples), so identical parameters always produce
// bit-identical output. The engine holds no state and is safe for concurrent
// use from any number of goroutines.
//
// # Exporters
//
// The export/ subpackages serialize outlines and solids to SVG, PDF, STEP and
// PNG. They consume only the value types defined here; the engine itself
// performs no I/O and never logs.
package curveplate

// Version is the current version of the library.
const Version = "0.3.1"
