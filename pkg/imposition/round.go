package imposition

import "math"

// Round3 rounds v to the nearest thousandth, ties away from zero.
// Magnitudes of 1e15 and above have no thousandths to round and are
// returned unchanged, which also keeps v*1000 from overflowing.
func Round3(v float64) float64 {
	if math.Abs(v) >= 1e15 || math.IsNaN(v) {
		return v
	}
	return math.Round(v*1000) / 1000
}
