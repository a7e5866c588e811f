// Package job loads batch job files: a YAML list of named templates built in
// one run. The geometry engine is stateless, so the templates of a job are
// solved concurrently by a bounded worker pool.
package job

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/curveplate/curveplate"
)

// Template is one named entry of a job file.
type Template struct {
	Name      string  `yaml:"name"`
	Type      string  `yaml:"type"` // straight, curve or transition
	Gauge     float64 `yaml:"gauge"`
	Scale     string  `yaml:"scale"` // named scale instead of explicit gauge
	Length    float64 `yaml:"length"`
	Radius    float64 `yaml:"radius"`
	ArcAngle  float64 `yaml:"angle"` // degrees
	ArcLength float64 `yaml:"arcLength"`
	Direction string  `yaml:"direction"`
	Extrude   float64 `yaml:"extrude"` // extrusion height; 0 means 2D only
}

// Job is a parsed job file.
type Job struct {
	Templates []Template `yaml:"templates"`
}

// Load parses a YAML job file.
func Load(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var j Job
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("job: parse: %w", err)
	}
	if len(j.Templates) == 0 {
		return nil, fmt.Errorf("job: no templates defined")
	}
	for i, t := range j.Templates {
		if t.Name == "" {
			return nil, fmt.Errorf("job: template %d has no name", i+1)
		}
	}
	return &j, nil
}

// Parameters converts a job entry to engine parameters. The engine performs
// full validation; this only resolves the type tag, scale preset and
// direction name.
func (t Template) Parameters() (curveplate.Parameters, error) {
	gauge := t.Gauge
	if t.Scale != "" {
		if t.Gauge != 0 {
			return nil, fmt.Errorf("job: %s: gauge and scale are mutually exclusive", t.Name)
		}
		g, ok := curveplate.GaugeForScale(t.Scale)
		if !ok {
			return nil, fmt.Errorf("job: %s: unknown scale %q", t.Name, t.Scale)
		}
		gauge = g
	}

	var dir curveplate.Direction
	if t.Direction != "" {
		d, err := curveplate.ParseDirection(t.Direction)
		if err != nil {
			return nil, fmt.Errorf("job: %s: %w", t.Name, err)
		}
		dir = d
	}

	switch t.Type {
	case "straight":
		return curveplate.Straight{Gauge: gauge, Length: t.Length}, nil
	case "curve":
		return curveplate.Curve{
			Gauge:     gauge,
			Radius:    t.Radius,
			ArcAngle:  t.ArcAngle,
			ArcLength: t.ArcLength,
			Direction: dir,
		}, nil
	case "transition":
		return curveplate.Transition{
			Gauge:     gauge,
			Radius:    t.Radius,
			Length:    t.Length,
			Direction: dir,
		}, nil
	}
	return nil, fmt.Errorf("job: %s: unknown template type %q", t.Name, t.Type)
}

// Result is the outcome for one job entry. Solid is set only when the entry
// requested an extrusion.
type Result struct {
	Template Template
	Outline  *curveplate.Outline
	Solid    *curveplate.Solid
	Err      error
}

// Build solves every template of the job and returns the results in input
// order. Workers bounds the concurrency; zero means GOMAXPROCS.
func Build(j *Job, workers int) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(j.Templates) {
		workers = len(j.Templates)
	}

	results := make([]Result, len(j.Templates))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = build(j.Templates[i])
			}
		}()
	}
	for i := range j.Templates {
		indices <- i
	}
	close(indices)
	wg.Wait()
	return results
}

func build(t Template) Result {
	res := Result{Template: t}

	params, err := t.Parameters()
	if err != nil {
		res.Err = err
		return res
	}

	if t.Extrude > 0 {
		solid, err := curveplate.BuildSolid(params, t.Extrude)
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", t.Name, err)
			return res
		}
		res.Solid = solid
		res.Outline = solid.Outline
	} else {
		outline, err := curveplate.BuildOutline(params)
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", t.Name, err)
			return res
		}
		res.Outline = outline
	}

	curveplate.Logger().Debug("template built", "name", t.Name, "type", t.Type)
	return res
}

// FirstError returns the first failed result in input order, or nil.
func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
