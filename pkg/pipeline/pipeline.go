// Package pipeline runs the calculate → render flow shared by the CLI, the
// interactive form and the HTTP API.
//
// # Stages
//
//  1. Calculate: validate inputs and compute the [imposition.Layout]
//  2. Render: project the layout on a canvas and produce artifacts
//     (SVG, PNG, PDF, JSON, text), cached by layout hash and options
//
// A failure in Calculate is terminal: nothing is rendered and no partial
// layout is returned. A failure in Render (for example a degenerate scale)
// leaves the layout intact so callers can still show the summary.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    PageLength: 12,
//	    DocLength:  3.625,
//	    Scheme:     "bifold",
//	    Formats:    []string{"svg"},
//	})
//	if result != nil {
//	    fmt.Print(result.Summary)
//	}
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
	"github.com/matzehuels/scoreline/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScheme is the fold scheme used when none is given.
	DefaultScheme = "bifold"

	// DefaultTextColumns is the strip width of the txt format.
	DefaultTextColumns = 80
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatText: true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatText: "text/plain; charset=utf-8",
}

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run. It doubles as the JSON request body
// of the HTTP API.
type Options struct {
	// Calculation inputs
	PageLength float64 `json:"page_length"`
	DocLength  float64 `json:"doc_length"`
	Scheme     string  `json:"scheme"`
	Offsets    string  `json:"offsets,omitempty"` // comma separated, custom scheme only

	// Render options
	Formats []string `json:"formats,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Layout    imposition.Layout
	Summary   string
	Artifacts map[string][]byte
	Stats     Stats
	CacheHit  bool // all artifacts came from cache
}

// Stats contains timing information.
type Stats struct {
	CalculateTime time.Duration
	RenderTime    time.Duration
}

// SetDefaults fills unset render options.
func (o *Options) SetDefaults() {
	if o.Scheme == "" {
		o.Scheme = DefaultScheme
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = render.DefaultCanvas.Width
	}
	if o.Height == 0 {
		o.Height = render.DefaultCanvas.Height
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Params returns the calculation parameters with the fixed gutter.
func (o Options) Params() imposition.Params {
	return imposition.NewParams(o.PageLength, o.DocLength)
}

// ParseScheme resolves the scheme name and custom offsets.
func (o Options) ParseScheme() (imposition.Scheme, error) {
	return imposition.ParseScheme(o.Scheme, o.Offsets)
}

// Canvas returns the drawing area.
func (o Options) Canvas() render.Canvas {
	return render.Canvas{Width: o.Width, Height: o.Height}
}

// Validate checks inputs and render options without computing anything.
func (o Options) Validate() error {
	if err := o.Params().Validate(); err != nil {
		return err
	}
	if _, err := o.ParseScheme(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidateCanvas(o.Width, o.Height)
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks.
// An empty string yields the default format.
func ParseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return []string{FormatSVG}
	}
	return formats
}

// Extension returns the file extension for a format.
func Extension(format string) string {
	return "." + format
}

// describe is used in log lines.
func describe(o Options) string {
	return fmt.Sprintf("P=%g D=%g %s", o.PageLength, o.DocLength, o.Scheme)
}
