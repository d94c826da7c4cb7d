package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreline/pkg/config"
	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
	"github.com/matzehuels/scoreline/pkg/pipeline"
)

// Form styles
var (
	formLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(18)
	formFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formInputStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	formDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	formErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	formSectionStyle = lipgloss.NewStyle().MarginTop(1)
)

// formCommand creates the interactive form command.
func (c *CLI) formCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Interactive form with live layout preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(nil, nil, c.Logger)
			m := NewFormModel(cmd.Context(), runner, c.Config)
			_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// FormModel - Interactive layout form
// =============================================================================

type formField int

const (
	fieldPage formField = iota
	fieldDoc
	fieldScheme
	fieldOffsets
)

// FormModel is the bubbletea model for the interactive form.
//
// Page, Doc and Offsets hold raw text as typed. Enter validates and
// calculates; on failure the previous Layout stays on screen next to the
// error.
type FormModel struct {
	Page    string
	Doc     string
	Offsets string
	Scheme  imposition.Kind
	Focus   formField

	Layout *imposition.Layout
	Err    error

	Columns int

	presets config.Presets
	pageIdx int // -1 until a preset is picked
	docIdx  int

	ctx    context.Context
	runner *pipeline.Runner
}

// NewFormModel creates a form pre-filled from the configured defaults.
func NewFormModel(ctx context.Context, runner *pipeline.Runner, cfg *config.Config) FormModel {
	kind, err := imposition.ParseKind(cfg.Defaults.Scheme)
	if err != nil {
		kind = imposition.Bifold
	}
	return FormModel{
		Page:    formatLength(cfg.Defaults.PageLength),
		Doc:     formatLength(cfg.Defaults.DocLength),
		Offsets: cfg.Defaults.Offsets,
		Scheme:  kind,
		Columns: defaultColumns,
		presets: cfg.Presets,
		pageIdx: -1,
		docIdx:  -1,
		ctx:     ctx,
		runner:  runner,
	}
}

func (m FormModel) Init() tea.Cmd {
	return nil
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.Focus = m.nextField(1)
		case "shift+tab", "up":
			m.Focus = m.nextField(-1)
		case "enter":
			m.calculate()
		case "]":
			m.Page, m.pageIdx = cyclePreset(m.presets.PageLengths, m.pageIdx, 1, m.Page)
		case "[":
			m.Page, m.pageIdx = cyclePreset(m.presets.PageLengths, m.pageIdx, -1, m.Page)
		case "}":
			m.Doc, m.docIdx = cyclePreset(m.presets.DocLengths, m.docIdx, 1, m.Doc)
		case "{":
			m.Doc, m.docIdx = cyclePreset(m.presets.DocLengths, m.docIdx, -1, m.Doc)
		case "right", " ":
			if m.Focus == fieldScheme {
				m.Scheme = cycleKind(m.Scheme, 1)
			} else if msg.String() == " " {
				m.insert(" ")
			}
		case "left":
			if m.Focus == fieldScheme {
				m.Scheme = cycleKind(m.Scheme, -1)
			}
		case "backspace":
			if p := m.focused(); p != nil && *p != "" {
				r := []rune(*p)
				*p = string(r[:len(r)-1])
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.insert(string(msg.Runes))
			}
		}
	case tea.WindowSizeMsg:
		m.Columns = msg.Width - 4
		if m.Columns < 20 {
			m.Columns = 20
		}
	}
	return m, nil
}

// calculate validates the inputs and replaces the layout on success.
func (m *FormModel) calculate() {
	page, err := errors.ParseLength("page length", m.Page)
	if err != nil {
		m.Err = err
		return
	}
	doc, err := errors.ParseLength("document length", m.Doc)
	if err != nil {
		m.Err = err
		return
	}
	l, err := m.runner.Calculate(m.ctx, pipeline.Options{
		PageLength: page,
		DocLength:  doc,
		Scheme:     m.Scheme.String(),
		Offsets:    m.Offsets,
	})
	if err != nil {
		m.Err = err
		return
	}
	m.Layout = &l
	m.Err = nil
}

// nextField moves focus by step, skipping the offsets field unless the
// custom scheme is selected.
func (m FormModel) nextField(step int) formField {
	n := int(fieldOffsets) + 1
	if m.Scheme != imposition.Custom {
		n = int(fieldScheme) + 1
	}
	return formField(((int(m.Focus)+step)%n + n) % n)
}

// focused returns the text of the focused input, or nil on the scheme field.
func (m *FormModel) focused() *string {
	switch m.Focus {
	case fieldPage:
		return &m.Page
	case fieldDoc:
		return &m.Doc
	case fieldOffsets:
		return &m.Offsets
	}
	return nil
}

func (m *FormModel) insert(s string) {
	if p := m.focused(); p != nil {
		*p += s
	}
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Imposition Layout"))
	b.WriteString("\n")
	b.WriteString(formDimStyle.Render("tab move  ←/→ scheme  [ ] page presets  { } doc presets  ⏎ calculate  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLine(fieldPage, "Page Length", m.Page))
	b.WriteString(m.fieldLine(fieldDoc, "Document Length", m.Doc))
	b.WriteString(m.fieldLine(fieldScheme, "Scheme", "‹ "+m.Scheme.String()+" ›"))
	if m.Scheme == imposition.Custom {
		b.WriteString(m.fieldLine(fieldOffsets, "Score Offsets", m.Offsets))
	}
	b.WriteString(formLabelStyle.Render("  Gutter"))
	b.WriteString(formDimStyle.Render(formatLength(imposition.GutterSize) + " (fixed)"))
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(formErrorStyle.Render(iconError + " " + errors.UserMessage(m.Err)))
		b.WriteString("\n")
	}

	if m.Layout != nil {
		b.WriteString(formSectionStyle.Render(m.resultView()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m FormModel) fieldLine(f formField, label, value string) string {
	cursor := "  "
	style := formInputStyle
	if m.Focus == f {
		cursor = "▸ "
		style = formFocusStyle
		if f != fieldScheme {
			value += "█"
		}
	}
	return formLabelStyle.Render(cursor+label) + style.Render(value) + "\n"
}

func (m FormModel) resultView() string {
	l := *m.Layout
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", formLabelStyle.Render("Max Documents"), StyleNumber.Render(strconv.Itoa(l.Count)))
	fmt.Fprintf(&b, "%s %s\n", formLabelStyle.Render("Starts"), StyleValue.Render(imposition.FormatList(l.Starts)))
	fmt.Fprintf(&b, "%s %s\n", formLabelStyle.Render("Scores"), StyleValue.Render(imposition.FormatList(l.Scores)))
	b.WriteString("\n")
	b.WriteString(stripView(l, m.Columns))
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// cycleKind steps through the schemes in display order.
func cycleKind(k imposition.Kind, step int) imposition.Kind {
	kinds := imposition.Kinds
	for i, kind := range kinds {
		if kind == k {
			return kinds[((i+step)%len(kinds)+len(kinds))%len(kinds)]
		}
	}
	return kinds[0]
}

// cyclePreset steps through presets, returning the new text and index.
// Without presets the current text is kept.
func cyclePreset(presets []float64, idx, step int, current string) (string, int) {
	if len(presets) == 0 {
		return current, idx
	}
	if idx < 0 && step < 0 {
		idx = 0
	}
	idx = ((idx+step)%len(presets) + len(presets)) % len(presets)
	return formatLength(presets[idx]), idx
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
