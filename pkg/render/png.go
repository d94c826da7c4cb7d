package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/scoreline/pkg/errors"
)

// MaxPNGPixels bounds the raster size after the pixel scale is applied.
const MaxPNGPixels = 40_000_000

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style Style
	scale float64
}

// WithPNGStyle overrides the colours.
func WithPNGStyle(s Style) PNGOption { return func(r *pngRenderer) { r.style = s } }

// WithPixelScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithPixelScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterises the scene.
func RenderPNG(s Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: DefaultStyle, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, fmt.Errorf("png: invalid pixel scale %g", r.scale)
	}

	wf := math.Ceil(s.Canvas.Width * r.scale)
	hf := math.Ceil(s.Canvas.Height * r.scale)
	if !(wf*hf <= MaxPNGPixels) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"png: %gx%g px exceeds %d pixels", wf, hf, MaxPNGPixels)
	}
	w, h := int(wf), int(hf)
	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	st := r.style
	dc.SetHexColor(st.Background)
	dc.Clear()
	dc.SetLineWidth(st.LineWidth)

	dc.SetHexColor(st.Outline)
	dc.DrawRectangle(s.Page.X, s.Page.Y, s.Page.W, s.Page.H)
	dc.Stroke()

	dc.SetHexColor(st.Document)
	for _, d := range s.Documents {
		dc.DrawRectangle(d.X, d.Y, d.W, d.H)
		dc.Fill()
	}

	dc.SetHexColor(st.Score)
	for _, l := range s.Scores {
		dc.DrawLine(l.X, l.Y1, l.X, l.Y2)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("png: encode: %w", err)
	}
	return buf.Bytes(), nil
}
