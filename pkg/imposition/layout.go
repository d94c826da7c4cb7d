package imposition

import "math"

// Layout is the result of one calculation. It is never mutated after Compute
// returns it.
type Layout struct {
	Params Params    `json:"params"`
	Scheme Scheme    `json:"scheme"`
	Count  int       `json:"count"`
	Offset float64   `json:"offset"` // unrounded centering offset of the first document
	Starts []float64 `json:"starts"`
	Scores []float64 `json:"scores"`
}

// DocumentCount returns how many documents of length d fit across a page of
// length p when adjacent documents are separated by gutter g:
// floor((p+g)/(d+g)). Callers must reject d+g ≤ 0 first (see Params.Validate);
// this function returns 0 for it rather than dividing. Counts beyond the
// range of int saturate at math.MaxInt.
func DocumentCount(p, d, g float64) int {
	if d+g <= 0 {
		return 0
	}
	n := math.Floor((p + g) / (d + g))
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// occupied is the width taken by n documents and the gutters between them.
func occupied(d, g float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*d + float64(n-1)*g
}

// CenteringOffset is the unrounded left edge of the first of n documents
// when the group is centered on the page.
func CenteringOffset(p, d, g float64, n int) float64 {
	return (p - occupied(d, g, n)) / 2
}

// StartPositions returns the left edge of each of n documents, centered as a
// group on the page and spaced exactly d+g apart. A count of zero or less
// yields an empty slice.
func StartPositions(p, d, g float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	offset := CenteringOffset(p, d, g, n)
	starts := make([]float64, n)
	for i := range starts {
		starts[i] = Round3(offset + float64(i)*(d+g))
	}
	return starts
}

// Compute validates p and runs the full pipeline for the given scheme.
// On validation failure no partial layout is returned.
func Compute(p Params, s Scheme) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	n := DocumentCount(p.PageLength, p.DocLength, p.Gutter)
	starts := StartPositions(p.PageLength, p.DocLength, p.Gutter, n)
	return Layout{
		Params: p,
		Scheme: s,
		Count:  n,
		Offset: CenteringOffset(p.PageLength, p.DocLength, p.Gutter, n),
		Starts: starts,
		Scores: Scores(starts, p.DocLength, s),
	}, nil
}
