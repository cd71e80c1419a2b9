package cli

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"deedles.dev/xshape"
	"deedles.dev/xshape/format"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// shapeDoc is the YAML form of a shape.
type shapeDoc struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Area   int      `yaml:"area"`
	Rows   []string `yaml:"rows"`
}

func newShapeDoc(r xshape.Rect, f format.Format) shapeDoc {
	return shapeDoc{
		Width:  r.Width(),
		Height: r.Height(),
		Area:   r.Area(),
		Rows:   slices.Collect(r.Rows(f)),
	}
}

// printer writes command results in the configured notation and
// output format.
type printer struct {
	format format.Format
	output string
}

func (p printer) print(w io.Writer, v any) error {
	switch p.output {
	case outputYAML:
		return p.printYAML(w, v)
	default:
		return p.printText(w, v)
	}
}

func (p printer) printText(w io.Writer, v any) error {
	r, ok := v.(xshape.Rect)
	if !ok {
		_, err := fmt.Fprintln(w, v)
		return err
	}

	for row := range r.Rows(p.format) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) printYAML(w io.Writer, v any) error {
	var doc any = map[string]any{"result": v}
	if r, ok := v.(xshape.Rect); ok {
		doc = newShapeDoc(r, p.format)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
