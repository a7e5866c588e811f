package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/curveplate/curveplate"
	"github.com/curveplate/curveplate/export/pdf"
	"github.com/curveplate/curveplate/export/raster"
	"github.com/curveplate/curveplate/export/step"
	"github.com/curveplate/curveplate/export/svg"
	"github.com/curveplate/curveplate/internal/paper"
)

// defaultFormats is produced when no --formats are requested: both 2D
// cutting drawings, with an auto-selected paper size.
var defaultFormats = []string{"svg", "pdf"}

// buildAndWrite runs the engine for one template and writes every requested
// output file. It is shared by the straight, curve and transition commands;
// the batch command goes through writeOutputs directly.
func buildAndWrite(params curveplate.Parameters, fallbackName string) error {
	var (
		outline *curveplate.Outline
		solid   *curveplate.Solid
		err     error
	)
	if flagExtrude > 0 {
		solid, err = curveplate.BuildSolid(params, flagExtrude)
		if solid != nil {
			outline = solid.Outline
		}
	} else {
		outline, err = curveplate.BuildOutline(params)
	}
	if err != nil {
		return err
	}

	name := flagName
	if name == "" {
		name = fallbackName
	}
	return writeOutputs(name, outline, solid, flagFormats)
}

// writeOutputs serializes one built template to the selected formats in the
// output directory.
func writeOutputs(name string, outline *curveplate.Outline, solid *curveplate.Solid, formats []string) error {
	if len(formats) == 0 {
		formats = defaultFormats
	}

	layout, err := pageLayout(outline)
	if err != nil {
		return err
	}

	for _, format := range formats {
		path := filepath.Join(flagOut, name+"."+format)
		if err := writeFile(path, format, outline, solid, layout, name); err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}

func writeFile(path, format string, outline *curveplate.Outline, solid *curveplate.Solid, layout paper.Layout, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "svg":
		err = svg.Write(f, outline, svg.Options{Layout: layout, Name: name, TitleBlock: flagTitleBlock})
	case "pdf":
		err = pdf.Write(f, outline, pdf.Options{Layout: layout, Name: name, TitleBlock: flagTitleBlock})
	case "step", "stp":
		if solid == nil {
			return fmt.Errorf("%s output requires --extrude", format)
		}
		err = step.Write(f, solid, step.Options{Name: name})
	case "png":
		err = raster.WritePNG(f, outline, raster.Options{})
	default:
		return fmt.Errorf("unknown format %q (want svg, pdf, step or png)", format)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// pageLayout computes the page placement from --paper and --margin, falling
// back to the smallest fitting paper.
func pageLayout(outline *curveplate.Outline) (paper.Layout, error) {
	margin := flagMargin
	if margin <= 0 {
		margin = paper.DefaultMargin
	}
	if flagPaper == "" {
		return paper.Auto(outline.BoundingBox(), margin), nil
	}
	size, err := paper.Parse(flagPaper)
	if err != nil {
		return paper.Layout{}, err
	}
	return paper.Fit(outline.BoundingBox(), size, margin), nil
}
