package errors

import (
	"math"
	"strconv"
	"strings"
)

// ValidateLength checks that v is a finite, strictly positive measurement.
// The name is used in the returned message ("page length", "document length").
func ValidateLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ParseLength parses a user-typed measurement and validates it with
// ValidateLength. Surrounding whitespace and any text after the number
// ("12in") are ignored.
func ParseLength(name, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, New(ErrCodeInvalidInput, "%s is required", name)
	}
	v, ok := LeadingFloat(s)
	if !ok {
		return 0, New(ErrCodeInvalidInput, "%s must be a number, got %q", name, s)
	}
	if err := ValidateLength(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// LeadingFloat parses the longest decimal number at the start of s, after
// leading whitespace: an optional sign, digits with an optional fraction,
// and an optional exponent. "Infinity" is accepted with an optional sign.
// Trailing text is ignored, so "2.5in" yields 2.5. It reports false when s
// does not start with a number. Values out of float64 range yield ±Inf.
func LeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		for i++; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if ne, ok := err.(*strconv.NumError); ok && ne.Err != strconv.ErrRange {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// MaxCanvasSide is the largest canvas width or height, in pixels.
const MaxCanvasSide = 10000

// ValidateCanvas checks canvas pixel dimensions.
func ValidateCanvas(width, height float64) error {
	if err := validateSide("width", width); err != nil {
		return err
	}
	return validateSide("height", height)
}

func validateSide(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidInput, "canvas %s must be positive, got %g", name, v)
	}
	if v > MaxCanvasSide {
		return New(ErrCodeInvalidInput, "canvas %s must be at most %d px, got %g", name, MaxCanvasSide, v)
	}
	return nil
}
