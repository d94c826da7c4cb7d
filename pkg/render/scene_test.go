package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
)

func mustLayout(t *testing.T, p, d float64, scheme imposition.Scheme) imposition.Layout {
	t.Helper()
	l, err := imposition.Compute(imposition.NewParams(p, d), scheme)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return l
}

func TestScale(t *testing.T) {
	tests := []struct {
		name    string
		page    float64
		width   float64
		want    float64
		wantErr bool
	}{
		{"normal", 12, 800, 800.0 / 12, false},
		{"zero page", 0, 800, 0, true},
		{"negative page", -12, 800, 0, true},
		{"zero width", 12, 0, 0, true},
		{"infinite page", math.Inf(1), 800, 0, true},
		{"NaN page", math.NaN(), 800, 0, true},
		{"tiny page", 1e-320, 800, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scale(tt.page, tt.width)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scale error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeDegenerateScale) {
				t.Errorf("Scale code = %v, want %v", errors.GetCode(err), errors.ErrCodeDegenerateScale)
			}
			if got != tt.want {
				t.Errorf("Scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewScene(t *testing.T) {
	l := mustLayout(t, 12, 4, imposition.Scheme{Kind: imposition.Bifold})
	s, err := NewScene(l, Canvas{Width: 1200, Height: 200})
	if err != nil {
		t.Fatalf("NewScene error: %v", err)
	}
	if s.Scale != 100 {
		t.Fatalf("Scale = %v, want 100", s.Scale)
	}

	approx := cmpopts.EquateApprox(0, 1e-6)
	if diff := cmp.Diff(Rect{X: 0, Y: 50, W: 1200, H: 100}, s.Page, approx); diff != "" {
		t.Errorf("Page mismatch (-want +got):\n%s", diff)
	}
	wantDocs := []Rect{
		{X: 193.8, Y: 50, W: 400, H: 100},
		{X: 606.3, Y: 50, W: 400, H: 100},
	}
	if diff := cmp.Diff(wantDocs, s.Documents, approx); diff != "" {
		t.Errorf("Documents mismatch (-want +got):\n%s", diff)
	}
	wantScores := []Line{
		{Pos: 3.938, X: 393.8, Y1: 50, Y2: 150},
		{Pos: 8.063, X: 806.3, Y1: 50, Y2: 150},
	}
	if diff := cmp.Diff(wantScores, s.Scores, approx); diff != "" {
		t.Errorf("Scores mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSceneRejectsBadCanvas(t *testing.T) {
	l := mustLayout(t, 12, 4, imposition.Scheme{Kind: imposition.Bifold})
	if _, err := NewScene(l, Canvas{Width: 0, Height: 200}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("NewScene with zero width: err = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestNewSceneDegenerateScale(t *testing.T) {
	// A layout the calculator accepts but the canvas cannot show.
	l := mustLayout(t, 1.7e308, 0.8e308, imposition.Scheme{Kind: imposition.Bifold})
	_, err := NewScene(l, Canvas{Width: 1e-20, Height: 200})
	if !errors.Is(err, errors.ErrCodeDegenerateScale) {
		t.Fatalf("NewScene err = %v, want %s", err, errors.ErrCodeDegenerateScale)
	}
	if l.Count == 0 {
		t.Error("calculation result should survive a render failure")
	}
}

func TestSummary(t *testing.T) {
	l := mustLayout(t, 12, 3.625, imposition.Scheme{Kind: imposition.Custom, Offsets: imposition.ParseOffsets("1, -1, abc, 10")})
	want := "Max Documents: 3\n" +
		"Document Start Positions: 0.438, 4.188, 7.938\n" +
		"Score Positions: 1.438, 5.188, 8.938\n"
	if got := Summary(l); got != want {
		t.Errorf("Summary =\n%s\nwant\n%s", got, want)
	}
}

func TestSummaryNoDocuments(t *testing.T) {
	l := mustLayout(t, 3, 4, imposition.Scheme{Kind: imposition.Bifold})
	want := "Max Documents: 0\nDocument Start Positions: \nScore Positions: \n"
	if got := Summary(l); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestTitle(t *testing.T) {
	l := mustLayout(t, 12, 3.625, imposition.Scheme{Kind: imposition.Trifold})
	if got, want := Title(l), "3 × 3.625 on 12, trifold"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}
