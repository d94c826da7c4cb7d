package imposition

import (
	"math"

	"github.com/matzehuels/scoreline/pkg/errors"
)

// GutterSize is the spacing between adjacent documents, in the same units as
// the page and document lengths. It is fixed for the process and is not
// configurable.
const GutterSize = 0.125

// MaxDocuments is the most documents a single page may hold. Larger counts
// are rejected as invalid input before any positions are allocated.
const MaxDocuments = 10000

// Params are the inputs of a single layout calculation.
type Params struct {
	PageLength float64 `json:"page_length"`
	DocLength  float64 `json:"doc_length"`
	Gutter     float64 `json:"gutter"`
}

// NewParams returns Params using the fixed GutterSize.
func NewParams(pageLength, docLength float64) Params {
	return Params{PageLength: pageLength, DocLength: docLength, Gutter: GutterSize}
}

// Validate rejects params the calculators cannot handle. A failure is
// terminal for the invocation: no calculation should run.
func (p Params) Validate() error {
	if err := errors.ValidateLength("page length", p.PageLength); err != nil {
		return err
	}
	if err := errors.ValidateLength("document length", p.DocLength); err != nil {
		return err
	}
	if math.IsNaN(p.Gutter) || math.IsInf(p.Gutter, 0) || p.Gutter < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "gutter must be a non-negative number, got %g", p.Gutter)
	}
	if p.DocLength+p.Gutter <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "document length plus gutter must be positive")
	}
	if n := math.Floor((p.PageLength + p.Gutter) / p.Pitch()); n > MaxDocuments {
		return errors.New(errors.ErrCodeInvalidInput,
			"%g documents of length %g fit on a page of length %g, at most %d are supported",
			n, p.DocLength, p.PageLength, MaxDocuments)
	}
	return nil
}

// Pitch is the distance between the starts of two adjacent documents.
func (p Params) Pitch() float64 {
	return p.DocLength + p.Gutter
}
