package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Style holds the colours of a preview as #rrggbb strings.
type Style struct {
	Background string
	Outline    string
	Document   string
	Score      string
	LineWidth  float64
}

// DefaultStyle is black page outline, light blue documents and red scores.
var DefaultStyle = Style{
	Background: "#ffffff",
	Outline:    "#000000",
	Document:   "#87cefa",
	Score:      "#ff0000",
	LineWidth:  1,
}

// hexRGB parses #rrggbb (or #rgb) into 0-255 components.
func hexRGB(s string) (r, g, b int, err error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}
