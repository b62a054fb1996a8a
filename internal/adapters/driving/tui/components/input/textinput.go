// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/onboardai/onboard/internal/adapters/driving/tui/styles"
)

// Field wraps a bubbles textinput with a label and focus styling.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// Option configures a Field.
type Option func(*Field)

// Masked hides typed characters.
func Masked() Option {
	return func(f *Field) {
		f.textinput.EchoMode = textinput.EchoPassword
		f.textinput.EchoCharacter = '•'
	}
}

// WithPlaceholder sets the placeholder text.
func WithPlaceholder(p string) Option {
	return func(f *Field) {
		f.textinput.Placeholder = p
	}
}

// NewField creates a labelled input.
func NewField(s *styles.Styles, label string, opts ...Option) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 40

	f := &Field{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     40,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Init starts the cursor blinking.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label above the input box.
func (f *Field) View() string {
	box := f.styles.InputField
	label := f.styles.Muted.Render(f.label)
	if f.textinput.Focused() {
		box = f.styles.FocusedInputField
		label = f.styles.Title.Render(f.label)
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, box.Render(f.textinput.View()))
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// Masked reports whether typed characters are hidden.
func (f *Field) Masked() bool {
	return f.textinput.EchoMode == textinput.EchoPassword
}

// SetWidth sets the outer width of the input.
func (f *Field) SetWidth(width int) {
	f.width = width
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	f.textinput.Width = inner
}

// Width returns the current width.
func (f *Field) Width() int {
	return f.width
}

// Reset clears the input.
func (f *Field) Reset() {
	f.textinput.Reset()
}
