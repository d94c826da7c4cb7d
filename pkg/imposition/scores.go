package imposition

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/scoreline/pkg/errors"
)

// Scores dispatches to the calculator for s.Kind. An unrecognised kind
// yields an empty sequence; callers validate membership with ParseScheme.
func Scores(starts []float64, d float64, s Scheme) []float64 {
	switch s.Kind {
	case Bifold:
		return BifoldScores(starts, d)
	case Trifold:
		return TrifoldScores(starts, d)
	case Gatefold:
		return GatefoldScores(starts, d)
	case Custom:
		return CustomScores(starts, d, s.Offsets)
	default:
		return []float64{}
	}
}

// BifoldScores places one score at the middle of each document.
func BifoldScores(starts []float64, d float64) []float64 {
	return perDocument(starts, d/2)
}

// TrifoldScores places scores at one and two thirds of each document.
func TrifoldScores(starts []float64, d float64) []float64 {
	return perDocument(starts, d/3, 2*d/3)
}

// GatefoldScores places scores at one and three quarters of each document.
func GatefoldScores(starts []float64, d float64) []float64 {
	return perDocument(starts, d/4, 3*d/4)
}

// perDocument emits start+offset for every start, offsets in the given order,
// documents in start order.
func perDocument(starts []float64, offsets ...float64) []float64 {
	scores := make([]float64, 0, len(starts)*len(offsets))
	for _, start := range starts {
		for _, o := range offsets {
			scores = append(scores, Round3(start+o))
		}
	}
	return scores
}

// CustomScores emits start+offset for every start and every offset in
// [0, d]. Offsets outside that range are dropped. The result is sorted
// ascending across the whole page.
func CustomScores(starts []float64, d float64, offsets []float64) []float64 {
	kept := make([]float64, 0, len(offsets))
	for _, o := range offsets {
		if o >= 0 && o <= d {
			kept = append(kept, o)
		}
	}
	scores := perDocument(starts, kept...)
	slices.Sort(scores)
	return scores
}

// ParseOffsets parses a comma separated list of offsets. Each entry is read
// up to the end of its leading number, so "2in" is 2. Entries that are empty,
// do not start with a number or are not finite are dropped silently.
func ParseOffsets(input string) []float64 {
	input = strings.TrimSpace(input)
	if input == "" {
		return []float64{}
	}
	parts := strings.Split(input, ",")
	offsets := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, ok := errors.LeadingFloat(part)
		if !ok || math.IsInf(v, 0) {
			continue
		}
		offsets = append(offsets, v)
	}
	return offsets
}

// FormatList joins values with ", " using the shortest decimal form of each
// value (8 rather than 8.000).
func FormatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
