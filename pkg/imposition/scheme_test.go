package imposition

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/scoreline/pkg/errors"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		offsets string
		want    Scheme
		wantErr bool
	}{
		{"bifold", "bifold", "", Scheme{Kind: Bifold}, false},
		{"case and space", "  TriFold ", "", Scheme{Kind: Trifold}, false},
		{"offsets ignored for gatefold", "gatefold", "1,2", Scheme{Kind: Gatefold}, false},
		{"custom", "custom", "2, 1, x", Scheme{Kind: Custom, Offsets: []float64{2, 1}}, false},
		{"custom with units", "custom", "1abc, 2in", Scheme{Kind: Custom, Offsets: []float64{1, 2}}, false},
		{"custom empty", "custom", "", Scheme{Kind: Custom, Offsets: []float64{}}, false},
		{"unknown", "zfold", "", Scheme{}, true},
		{"empty", "", "", Scheme{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheme(tt.scheme, tt.offsets)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScheme error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidScheme) {
				t.Errorf("ParseScheme code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidScheme)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseScheme mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchemeString(t *testing.T) {
	if got := (Scheme{Kind: Gatefold}).String(); got != "gatefold" {
		t.Errorf("String() = %q", got)
	}
	if got := (Scheme{Kind: Custom, Offsets: []float64{1, 2.5}}).String(); got != "custom(1, 2.5)" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSchemeJSON(t *testing.T) {
	data, err := json.Marshal(Scheme{Kind: Custom, Offsets: []float64{1, 2}})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"kind":"custom","offsets":[1,2]}` {
		t.Errorf("Marshal = %s", data)
	}

	var s Scheme
	if err := json.Unmarshal([]byte(`{"kind":"trifold","offsets":[1]}`), &s); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if s.Kind != Trifold || s.Offsets != nil {
		t.Errorf("Unmarshal = %+v, want trifold without offsets", s)
	}

	if err := json.Unmarshal([]byte(`{"kind":"zfold"}`), &s); err == nil {
		t.Error("Unmarshal of unknown kind should fail")
	}
}
