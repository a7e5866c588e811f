package curveplate

import (
	"errors"
	"math"
	"testing"
)

func TestBuildOutline_Straight(t *testing.T) {
	outline, err := BuildOutline(Straight{Gauge: 16.5, Length: 200})
	if err != nil {
		t.Fatal(err)
	}

	// A straight template is a rectangle: inner boundary on y=0, outer on
	// y=gauge.
	want := []Point{
		Pt(0, 0), Pt(200, 0), Pt(200, 16.5), Pt(0, 16.5), Pt(0, 0),
	}
	got := outline.Polygon()
	if len(got) != len(want) {
		t.Fatalf("Polygon() has %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if !pointsEqual(got[i], want[i], epsilon) {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}

	w, h := outline.Dimensions()
	if math.Abs(w-200) > epsilon || math.Abs(h-16.5) > epsilon {
		t.Errorf("Dimensions() = %v x %v, want 200 x 16.5", w, h)
	}
}

func TestBuildOutline_Curve(t *testing.T) {
	outline, err := BuildOutline(Curve{Gauge: 16.5, Radius: 500, ArcAngle: 30})
	if err != nil {
		t.Fatal(err)
	}

	inner, ok := outline.Inner.(ArcSeg)
	if !ok {
		t.Fatalf("inner boundary is %T, want ArcSeg", outline.Inner)
	}
	outer, ok := outline.Outer.(ArcSeg)
	if !ok {
		t.Fatalf("outer boundary is %T, want ArcSeg", outline.Outer)
	}

	if inner.Radius != 500 {
		t.Errorf("inner radius = %v, want 500", inner.Radius)
	}
	if outer.Radius != 516.5 {
		t.Errorf("outer radius = %v, want 516.5", outer.Radius)
	}
	if outer.Center != inner.Center {
		t.Errorf("outer boundary must be concentric: %v vs %v", outer.Center, inner.Center)
	}
	wantSweep := 30 * math.Pi / 180
	if math.Abs(inner.Sweep()-wantSweep) > epsilon {
		t.Errorf("sweep = %v, want %v", inner.Sweep(), wantSweep)
	}
	if !pointsEqual(inner.Start(), Pt(0, 0), epsilon) {
		t.Errorf("inner arc starts at %v, want origin", inner.Start())
	}

	// End caps have length gauge and sit perpendicular to the local tangent.
	for _, tc := range []struct {
		name string
		cap  LineSeg
		tan  Vec2
	}{
		{"start", outline.StartCap, inner.StartTangent()},
		{"end", outline.EndCap, inner.EndTangent()},
	} {
		if math.Abs(tc.cap.Length()-16.5) > epsilon {
			t.Errorf("%s cap length = %v, want 16.5", tc.name, tc.cap.Length())
		}
		if dot := tc.cap.StartTangent().Dot(tc.tan); math.Abs(dot) > epsilon {
			t.Errorf("%s cap is not perpendicular to the boundary tangent (dot=%v)", tc.name, dot)
		}
	}
}

func TestBuildOutline_CurveByLengthMatchesByAngle(t *testing.T) {
	byAngle, err := BuildOutline(Curve{Gauge: 16.5, Radius: 500, ArcAngle: 30})
	if err != nil {
		t.Fatal(err)
	}
	byLength, err := BuildOutline(Curve{Gauge: 16.5, Radius: 500, ArcLength: 261.799})
	if err != nil {
		t.Fatal(err)
	}

	a, b := byAngle.Polygon(), byLength.Polygon()
	if len(a) != len(b) {
		t.Fatalf("polygon sizes differ: %d vs %d", len(a), len(b))
	}
	// 261.799 is 500 * 30 degrees to six figures, so the outlines agree to
	// about a micrometre.
	for i := range a {
		if !pointsEqual(a[i], b[i], 1e-2) {
			t.Errorf("point %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBuildOutline_Transition(t *testing.T) {
	outline, err := BuildOutline(Transition{Gauge: 16.5, Radius: 300, Length: 150, Direction: Left})
	if err != nil {
		t.Fatal(err)
	}

	inner, ok := outline.Inner.(SpiralSeg)
	if !ok {
		t.Fatalf("inner boundary is %T, want SpiralSeg", outline.Inner)
	}

	// Curvature rises linearly from 0 to 1/300 over s in [0, 150].
	for _, s := range []float64{0, 37.5, 75, 112.5, 150} {
		want := s / (300 * 150)
		if math.Abs(inner.Curvature(s)-want) > epsilon {
			t.Errorf("Curvature(%v) = %v, want %v", s, inner.Curvature(s), want)
		}
	}

	// The far cap is perpendicular to the spiral's end tangent, whose
	// heading is L/(2R), not 0: the cap must follow the local tangent.
	wantHeading := 150.0 / (2 * 300)
	if math.Abs(inner.EndTangent().Atan2()-wantHeading) > epsilon {
		t.Errorf("end tangent heading = %v, want %v", inner.EndTangent().Atan2(), wantHeading)
	}
	if dot := outline.EndCap.StartTangent().Dot(inner.EndTangent()); math.Abs(dot) > epsilon {
		t.Errorf("end cap is not perpendicular to the spiral tangent (dot=%v)", dot)
	}
}

func TestBuildOutline_TransitionChirality(t *testing.T) {
	left, err := BuildOutline(Transition{Gauge: 16.5, Radius: 300, Length: 150, Direction: Left})
	if err != nil {
		t.Fatal(err)
	}
	right, err := BuildOutline(Transition{Gauge: 16.5, Radius: 300, Length: 150, Direction: Right})
	if err != nil {
		t.Fatal(err)
	}

	lp, rp := left.Polygon(), right.Polygon()
	if len(lp) != len(rp) {
		t.Fatalf("polygon sizes differ: %d vs %d", len(lp), len(rp))
	}
	for i := range lp {
		if !pointsEqual(rp[i], lp[i].MirrorY(), 1e-12) {
			t.Fatalf("point %d: right %v is not the mirror of left %v", i, rp[i], lp[i])
		}
	}
}

func TestBuildOutline_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params Parameters
		want   error
	}{
		{"zero gauge straight", Straight{Gauge: 0, Length: 200}, ErrInvalidGauge},
		{"zero gauge curve", Curve{Gauge: 0, Radius: 500, ArcAngle: 30}, ErrInvalidGauge},
		{"zero gauge transition", Transition{Gauge: 0, Radius: 300, Length: 150, Direction: Left}, ErrInvalidGauge},
		{"negative gauge", Straight{Gauge: -16.5, Length: 200}, ErrInvalidGauge},
		{"zero length", Straight{Gauge: 16.5, Length: 0}, ErrInvalidLength},
		{"zero radius", Curve{Gauge: 16.5, Radius: 0, ArcAngle: 30}, ErrInvalidRadius},
		{"negative radius", Transition{Gauge: 16.5, Radius: -300, Length: 150, Direction: Left}, ErrInvalidRadius},
		{"angle and length", Curve{Gauge: 16.5, Radius: 500, ArcAngle: 30, ArcLength: 261.799}, ErrAmbiguousCurveSpec},
		{"neither angle nor length", Curve{Gauge: 16.5, Radius: 500}, ErrMissingCurveSpec},
		{"angle over 360", Curve{Gauge: 16.5, Radius: 500, ArcAngle: 400}, ErrInvalidArcAngle},
		{"negative angle", Curve{Gauge: 16.5, Radius: 500, ArcAngle: -30}, ErrInvalidArcAngle},
		{"no direction", Transition{Gauge: 16.5, Radius: 300, Length: 150}, ErrMissingDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outline, err := BuildOutline(tt.params)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if outline != nil {
				t.Error("no geometry may be produced for invalid parameters")
			}
		})
	}
}

func TestBuildOutline_CurveDirectionDefaultsLeft(t *testing.T) {
	plain, err := BuildOutline(Curve{Gauge: 16.5, Radius: 500, ArcAngle: 30})
	if err != nil {
		t.Fatal(err)
	}
	left, err := BuildOutline(Curve{Gauge: 16.5, Radius: 500, ArcAngle: 30, Direction: Left})
	if err != nil {
		t.Fatal(err)
	}
	if plain.Inner.(ArcSeg) != left.Inner.(ArcSeg) {
		t.Error("a curve without direction must default to Left")
	}
}

func TestBuildSolid(t *testing.T) {
	solid, err := BuildSolid(Straight{Gauge: 16.5, Length: 200}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if solid.Height != 3 {
		t.Errorf("Height = %v, want 3", solid.Height)
	}
	if solid.Outline == nil {
		t.Fatal("solid has no outline")
	}

	if _, err := BuildSolid(Straight{Gauge: 16.5, Length: 200}, 0); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("zero height: err = %v, want ErrInvalidHeight", err)
	}
	// Height is checked before the parameters; validation still runs.
	if _, err := BuildSolid(Straight{Gauge: 0, Length: 200}, 3); !errors.Is(err, ErrInvalidGauge) {
		t.Errorf("invalid gauge: err = %v, want ErrInvalidGauge", err)
	}
}

func TestGaugeForScale(t *testing.T) {
	tests := []struct {
		name string
		want float64
		ok   bool
	}{
		{"n", GaugeN, true},
		{"HO", GaugeHO, true},
		{"oo", GaugeHO, true},
		{"TT", GaugeTT, true},
		{"o", GaugeO, true},
		{"z", 0, false},
	}
	for _, tt := range tests {
		got, ok := GaugeForScale(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("GaugeForScale(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
