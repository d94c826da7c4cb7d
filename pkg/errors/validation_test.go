package errors

import (
	"math"
	"testing"
)

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 12, false},
		{"small positive", 0.001, false},

		{"zero", 0, true},
		{"negative", -3.5, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength("page length", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateLength(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain", "12", 12, false},
		{"decimal", "3.625", 3.625, false},
		{"whitespace", "  8.5 \t", 8.5, false},

		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"letters", "abc", 0, true},
		{"unit suffix", "12in", 12, false},
		{"fraction suffix", "3.625 inches", 3.625, false},
		{"exponent", "1.2e1", 12, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"NaN literal", "NaN", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLength("document length", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLength(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLeadingFloat(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"12", 12, true},
		{"  -3.5", -3.5, true},
		{"+.5", 0.5, true},
		{"5.", 5, true},
		{"1abc", 1, true},
		{"2in", 2, true},
		{"1e3x", 1000, true},
		{"1e", 1, true},
		{"1e+", 1, true},
		{"2E-1", 0.2, true},
		{"1.5.5", 1.5, true},
		{"0x10", 0, true},
		{"1_000", 1, true},
		{"1e400", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"Infinityx", math.Inf(1), true},

		{"", 0, false},
		{"abc", 0, false},
		{".", 0, false},
		{"-", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"e5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := LeadingFloat(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("LeadingFloat(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValidateCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"default", 800, 200, false},
		{"zero width", 0, 200, true},
		{"zero height", 800, 0, true},
		{"negative", -1, -1, true},
		{"inf width", math.Inf(1), 200, true},
		{"largest side", MaxCanvasSide, MaxCanvasSide, false},
		{"too wide", 1e6, 200, true},
		{"too tall", 800, MaxCanvasSide + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCanvas(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCanvas(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
		})
	}
}
