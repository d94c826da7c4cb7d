package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Characters used by RenderText.
const (
	glyphPaper    = "·"
	glyphDocument = "█"
	glyphScore    = "│"
)

// TextOption configures terminal rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	style Style
	plain bool
	rows  int
}

// WithPlain disables colour, for logs and tests.
func WithPlain() TextOption { return func(r *textRenderer) { r.plain = true } }

// WithRows sets how many rows the strip occupies (default 3).
func WithRows(n int) TextOption { return func(r *textRenderer) { r.rows = n } }

// RenderText draws the scene as a strip of characters, one per canvas
// column. Use a canvas as wide as the terminal.
func RenderText(s Scene, opts ...TextOption) string {
	r := textRenderer{style: DefaultStyle, rows: 3}
	for _, opt := range opts {
		opt(&r)
	}
	if r.rows < 1 {
		r.rows = 1
	}

	cols := int(s.Canvas.Width)
	if cols < 1 {
		return ""
	}
	cells := make([]string, cols)
	for i := range cells {
		cells[i] = glyphPaper
	}
	for _, d := range s.Documents {
		from, to := column(d.X, cols), column(d.X+d.W-1e-9, cols)
		for c := from; c <= to; c++ {
			cells[c] = glyphDocument
		}
	}
	for _, l := range s.Scores {
		if l.X < 0 || l.X > s.Canvas.Width {
			continue
		}
		cells[column(l.X, cols)] = glyphScore
	}

	paper := r.paint("240")
	doc := r.paint(r.style.Document)
	score := r.paint(r.style.Score)

	var row strings.Builder
	for _, cell := range cells {
		switch cell {
		case glyphDocument:
			row.WriteString(doc.Render(cell))
		case glyphScore:
			row.WriteString(score.Render(cell))
		default:
			row.WriteString(paper.Render(cell))
		}
	}

	lines := make([]string, r.rows)
	for i := range lines {
		lines[i] = row.String()
	}
	return strings.Join(lines, "\n")
}

// paint accepts anything lipgloss.Color does: #rrggbb or an ANSI index.
func (r textRenderer) paint(colour string) lipgloss.Style {
	if r.plain {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colour))
}

// column maps a pixel x to a column index clamped to [0, cols).
func column(x float64, cols int) int {
	c := int(math.Floor(x))
	if c < 0 {
		return 0
	}
	if c >= cols {
		return cols - 1
	}
	return c
}
