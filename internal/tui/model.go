package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

const (
	nameColumnWidth = 14
	minValueWidth   = 30
	defaultWidth    = 80
	minSourceWidth  = 16
)

// InflectorMsg replaces the inflector, e.g. after a configuration reload
type InflectorMsg struct {
	Inflector *stringx.Inflector
}

// ErrMsg reports an error without leaving the TUI
type ErrMsg struct {
	Err error
}

// Row is one operation applied to the input
type Row struct {
	Name  string
	Value string
}

// Inflections applies every inflector operation to s
func Inflections(in *stringx.Inflector, s string) []Row {
	return []Row{
		{"classify", stringx.Classify(s)},
		{"underscore", stringx.Underscore(s)},
		{"dasherize", stringx.Dasherize(s)},
		{"demodulize", stringx.Demodulize(s)},
		{"namespace", stringx.Namespace(s)},
		{"titleize", stringx.Titleize(s)},
		{"capitalize", stringx.Capitalize(s)},
		{"pluralize", in.Pluralize(s)},
		{"singularize", in.Singularize(s)},
		{`rsub "/" "#"`, stringx.RSub(s, "/", "#")},
	}
}

// Model is the inflection preview model
type Model struct {
	// State
	width  int
	height int
	err    error
	source string

	// Components
	input textinput.Model
	table table.Model

	inflector *stringx.Inflector
	rows      []Row
	tokens    []string
}

// Option configures a Model
type Option func(*Model)

// WithInflector sets the inflector used for pluralize and singularize
func WithInflector(in *stringx.Inflector) Option {
	return func(m *Model) {
		if in != nil {
			m.inflector = in
		}
	}
}

// WithValue pre-fills the input
func WithValue(value string) Option {
	return func(m *Model) {
		m.input.SetValue(value)
	}
}

// WithSource names the configuration shown in the status bar
func WithSource(source string) Option {
	return func(m *Model) {
		m.source = source
	}
}

// NewModel creates a new preview model
func NewModel(opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Hanami::Utils::String"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = defaultWidth - 8
	ti.Focus()

	tbl := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithHeight(11),
		table.WithFocused(false),
	)
	tbl.SetStyles(tableStyles())

	m := Model{
		width:     defaultWidth,
		input:     ti,
		table:     tbl,
		inflector: stringx.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+l":
			m.input.Reset()
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-8)
		m.table.SetColumns(columns(msg.Width))
		return m, nil

	case InflectorMsg:
		if msg.Inflector != nil {
			m.inflector = msg.Inflector
			m.err = nil
			m.refresh()
		}
		return m, nil

	case ErrMsg:
		m.err = msg.Err
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// Value returns the current input
func (m Model) Value() string {
	return m.input.Value()
}

// Rows returns the operations applied to the current input
func (m Model) Rows() []Row {
	return m.rows
}

// Tokens returns the Tokenize variants of the current input
func (m Model) Tokens() []string {
	return m.tokens
}

// refresh recomputes rows and tokens from the input
func (m *Model) refresh() {
	value := m.input.Value()
	m.rows = Inflections(m.inflector, value)
	m.tokens = nil
	if value != "" {
		m.tokens = stringx.Tokens(value)
	}

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{r.Name, r.Value}
	}
	m.table.SetRows(rows)
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	// Header
	s.WriteString(lipgloss.JoinVertical(lipgloss.Left,
		RenderTitle("textkit"),
		SubtitleStyle.Render("Inflection preview"),
	))
	s.WriteString("\n\n")

	// Input
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")

	// Operations
	s.WriteString(BoxStyle.Render(m.table.View()))
	s.WriteString("\n")

	// Tokens
	s.WriteString(m.renderTokens())

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(RenderError(m.err.Error()))
	}

	// Footer
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderTokens() string {
	var s strings.Builder
	s.WriteString(SubtitleStyle.Render("tokenize"))
	s.WriteString("\n")
	if len(m.tokens) == 0 {
		s.WriteString("  -\n")
		return s.String()
	}
	for _, t := range m.tokens {
		s.WriteString(fmt.Sprintf("  %s\n", TokenStyle.Render(t)))
	}
	return s.String()
}

func (m *Model) renderFooter() string {
	help := "Ctrl+L: Clear • Esc/Ctrl+C: Quit"
	source := "config: built-in"
	if m.source != "" {
		source = "config: " + m.source
	}
	// long config paths are cut to keep the bar on one line
	source = stringx.Truncate(source, max(minSourceWidth, m.width-lipgloss.Width(help)-4), "…")

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-lipgloss.Width(source)-4)),
			source,
		),
	)
}

func columns(width int) []table.Column {
	value := max(minValueWidth, width-nameColumnWidth-8)
	return []table.Column{
		{Title: "Operation", Width: nameColumnWidth},
		{Title: "Result", Width: value},
	}
}
