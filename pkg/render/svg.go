package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/scoreline/pkg/imposition"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  Style
	labels bool
}

// WithSVGStyle overrides the colours.
func WithSVGStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLabels prints each score position above its line.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG renders the scene as a standalone SVG document.
func RenderSVG(s Scene, opts ...SVGOption) []byte {
	r := svgRenderer{style: DefaultStyle}
	for _, opt := range opts {
		opt(&r)
	}
	st := r.style

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		num(s.Canvas.Width), num(s.Canvas.Height), s.Canvas.Width, s.Canvas.Height)
	fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
		num(s.Canvas.Width), num(s.Canvas.Height), st.Background)
	fmt.Fprintf(&buf, `  <rect class="page" x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		num(s.Page.X), num(s.Page.Y), num(s.Page.W), num(s.Page.H), st.Outline, num(st.LineWidth))

	buf.WriteString(`  <g class="documents">` + "\n")
	for i, d := range s.Documents {
		fmt.Fprintf(&buf, `    <rect id="doc-%d" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			i+1, num(d.X), num(d.Y), num(d.W), num(d.H), st.Document)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="scores">` + "\n")
	for _, l := range s.Scores {
		fmt.Fprintf(&buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			num(l.X), num(l.Y1), num(l.X), num(l.Y2), st.Score, num(st.LineWidth))
		if r.labels {
			fmt.Fprintf(&buf, `    <text x="%s" y="%s" font-family="sans-serif" font-size="10" text-anchor="middle" fill="%s">%s</text>`+"\n",
				num(l.X), num(l.Y1-4), st.Score, num(l.Pos))
		}
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	return strconv.FormatFloat(imposition.Round3(v), 'f', -1, 64)
}
