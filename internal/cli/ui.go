package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
	"github.com/matzehuels/scoreline/pkg/render"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Layout Display
// =============================================================================

// summaryKeyWidth fits the longest summary label.
const summaryKeyWidth = 26

// printLayout prints the calculation summary: document count, start
// positions and score positions, followed by the fixed gutter.
func printLayout(l imposition.Layout) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(summaryKeyWidth)
	row := func(key, value string) {
		fmt.Println(keyStyle.Render(key) + " " + value)
	}
	row("Max Documents:", StyleNumber.Render(strconv.Itoa(l.Count)))
	row("Document Start Positions:", StyleValue.Render(imposition.FormatList(l.Starts)))
	row("Score Positions:", StyleValue.Render(imposition.FormatList(l.Scores)))
	row("Gutter:", StyleDim.Render(imposition.FormatList([]float64{l.Params.Gutter})+" (fixed)"))
}

// printStrip draws the layout as a terminal strip.
func printStrip(l imposition.Layout, columns int) {
	fmt.Println(stripView(l, columns))
}

// stripView renders the strip, or a warning when the layout is too large
// to draw.
func stripView(l imposition.Layout, columns int) string {
	scene, err := render.NewScene(l, render.Canvas{Width: float64(columns), Height: 3})
	if err != nil {
		return styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(errors.UserMessage(err))
	}
	return render.RenderText(scene)
}

// printStats prints artifact statistics on a single line.
func printStats(formats []string, cached bool) {
	var parts []string
	if len(formats) > 0 {
		parts = append(parts, fmt.Sprintf("%d files", len(formats)))
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
