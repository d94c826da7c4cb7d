package render

import (
	"math"

	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
)

// Canvas is the drawing area in pixels.
type Canvas struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// DefaultCanvas is the size of the form preview.
var DefaultCanvas = Canvas{Width: 800, Height: 200}

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Line is a vertical score line at X from Y1 to Y2. Pos is the score
// position in layout units.
type Line struct {
	Pos       float64
	X, Y1, Y2 float64
}

// Scene is a layout projected onto a canvas.
type Scene struct {
	Canvas    Canvas
	Scale     float64 // pixels per unit of length
	Page      Rect
	Documents []Rect
	Scores    []Line
}

// Scale returns the pixels-per-unit factor for drawing a page of the given
// length across width pixels.
func Scale(pageLength, width float64) (float64, error) {
	s := width / pageLength
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return 0, errors.New(errors.ErrCodeDegenerateScale,
			"page length %g cannot be drawn on a %g px canvas", pageLength, width)
	}
	return s, nil
}

// NewScene projects l onto c.
func NewScene(l imposition.Layout, c Canvas) (Scene, error) {
	if err := errors.ValidateCanvas(c.Width, c.Height); err != nil {
		return Scene{}, err
	}
	scale, err := Scale(l.Params.PageLength, c.Width)
	if err != nil {
		return Scene{}, err
	}

	top, band := c.Height/4, c.Height/2
	s := Scene{
		Canvas:    c,
		Scale:     scale,
		Page:      Rect{X: 0, Y: top, W: c.Width, H: band},
		Documents: make([]Rect, len(l.Starts)),
		Scores:    make([]Line, len(l.Scores)),
	}
	for i, start := range l.Starts {
		s.Documents[i] = Rect{X: start * scale, Y: top, W: l.Params.DocLength * scale, H: band}
	}
	for i, pos := range l.Scores {
		s.Scores[i] = Line{Pos: pos, X: pos * scale, Y1: top, Y2: top + band}
	}
	return s, nil
}
