// Package step serializes extruded template solids to STEP (ISO 10303-21)
// part files.
//
// The writer emits a minimal AP214 structure: the product definition chain
// plus the cross-section vertices, enough for downstream CAD tooling to
// reconstruct the extruded plate. It deliberately avoids a full B-rep
// encoder; templates are simple right prisms.
package step

import (
	"fmt"
	"io"
	"time"

	"github.com/curveplate/curveplate"
)

// Options configures one STEP file.
type Options struct {
	// Name is the product name recorded in the file.
	Name string

	// Now overrides the file timestamp; zero means time.Now.
	Now time.Time
}

// Write serializes the solid to w as a STEP AP214 document.
func Write(w io.Writer, solid *curveplate.Solid, opts Options) error {
	if solid == nil || solid.Outline == nil {
		return fmt.Errorf("step: nil solid")
	}

	name := opts.Name
	if name == "" {
		name = "template"
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	curveplate.Logger().Debug("step export", "name", name, "height", solid.Height)

	poly := solid.Outline.Polygon()
	vertices := poly[:len(poly)-1] // drop the closing duplicate

	buf := &errWriter{w: w}
	fmt.Fprintf(buf, `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('Curveplate Track Template'),'2;1');
FILE_NAME('%s.stp','%s',(''),(''),'','curveplate','');
FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));
ENDSEC;
DATA;
`, name, now.Format("2006-01-02T15:04:05"))

	id := 1
	emit := func(format string, args ...any) int {
		fmt.Fprintf(buf, "#%d="+format+"\n", append([]any{id}, args...)...)
		id++
		return id - 1
	}

	appCtx := emit("APPLICATION_CONTEXT('automotive design');")
	emit("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2010,#%d);", appCtx)
	product := emit("PRODUCT('%s','Track Template','',(#%d));", name, id+1)
	emit("PRODUCT_CONTEXT('',#%d,'mechanical');", appCtx)
	formation := emit("PRODUCT_DEFINITION_FORMATION('','',#%d);", product)
	defCtx := emit("PRODUCT_DEFINITION_CONTEXT('part definition',#%d,'design');", appCtx)
	emit("PRODUCT_DEFINITION('design','',#%d,#%d);", formation, defCtx)

	for _, v := range vertices {
		emit("CARTESIAN_POINT('',(%.6f,%.6f,0.0));", v.X, v.Y)
	}

	fmt.Fprintf(buf, "/* Template gauge: %gmm, extrusion height: %gmm */\n", solid.Outline.Gauge, solid.Height)
	fmt.Fprintf(buf, "/* Vertices: %d points defining the cross-section */\n", len(vertices))
	fmt.Fprint(buf, "ENDSEC;\nEND-ISO-10303-21;\n")
	return buf.err
}

// errWriter latches the first write error so the entity emitters above can
// stay free of error plumbing.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, nil
}
