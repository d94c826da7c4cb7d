package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
)

// LayoutJSON is the exported form of a calculation.
type LayoutJSON struct {
	PageLength float64           `json:"page_length"`
	DocLength  float64           `json:"doc_length"`
	Gutter     float64           `json:"gutter"`
	Scheme     imposition.Scheme `json:"scheme"`
	Count      int               `json:"count"`
	Starts     []float64         `json:"starts"`
	Scores     []float64         `json:"scores"`
}

// NewLayoutJSON converts a layout to its exported form.
func NewLayoutJSON(l imposition.Layout) LayoutJSON {
	return LayoutJSON{
		PageLength: l.Params.PageLength,
		DocLength:  l.Params.DocLength,
		Gutter:     l.Params.Gutter,
		Scheme:     l.Scheme,
		Count:      l.Count,
		Starts:     nonNil(l.Starts),
		Scores:     nonNil(l.Scores),
	}
}

// RenderJSON exports the layout as indented JSON. It needs no canvas, so it
// succeeds for layouts that cannot be drawn.
func RenderJSON(l imposition.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(NewLayoutJSON(l), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return append(data, '\n'), nil
}

// ParseLayoutJSON reads an exported layout. The positions are recomputed
// from the stored inputs so a hand-edited file cannot disagree with them,
// and the stored gutter is replaced by the fixed GutterSize.
func ParseLayoutJSON(data []byte) (imposition.Layout, error) {
	var in LayoutJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return imposition.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	if !in.Scheme.Kind.Valid() {
		return imposition.Layout{}, errors.New(errors.ErrCodeInvalidScheme, "layout has no fold scheme")
	}
	return imposition.Compute(imposition.NewParams(in.PageLength, in.DocLength), in.Scheme)
}

// ReadLayoutFile reads a layout written by RenderJSON.
func ReadLayoutFile(path string) (imposition.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return imposition.Layout{}, err
	}
	return ParseLayoutJSON(data)
}

func nonNil(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}
