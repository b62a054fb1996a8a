package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/onboardai/onboard/internal/adapters/driving/tui/components/input"
	"github.com/onboardai/onboard/internal/adapters/driving/tui/components/status"
	"github.com/onboardai/onboard/internal/adapters/driving/tui/keymap"
	"github.com/onboardai/onboard/internal/adapters/driving/tui/messages"
	"github.com/onboardai/onboard/internal/adapters/driving/tui/styles"
	"github.com/onboardai/onboard/internal/core/domain"
)

const sidebarWidth = 44

// App is the single-screen onboarding TUI following the Elm architecture.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	fields [messages.FieldCount]*input.Field
	focus  messages.Field
	bar    *status.Bar

	// apiKey is the key in effect; it changes only when the key field is submitted.
	apiKey string

	// busy is set while a dispatcher call is in flight.
	busy bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		bar:    status.NewBar(s, km),
		apiKey: strings.TrimSpace(ports.APIKey),
	}
	a.fields[messages.FieldAPIKey] = input.NewField(s, "Gemini API Key",
		input.Masked(), input.WithPlaceholder("Paste key and press enter"))
	a.fields[messages.FieldEmployee] = input.NewField(s, "New employee name",
		input.WithPlaceholder("e.g. Asha Rao"))
	a.fields[messages.FieldQuestion] = input.NewField(s, "Ask HR",
		input.WithPlaceholder("What are my leave days?"))

	a.fields[messages.FieldAPIKey].SetValue(a.apiKey)
	a.focus = messages.FieldEmployee
	if a.apiKey == "" {
		a.focus = messages.FieldAPIKey
	}
	a.fields[a.focus].Focus()
	a.refreshIndicators()

	return a, nil
}

// WithContext sets the context passed to dispatcher calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("OnboardAI"),
		a.fields[a.focus].Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.OnboardingCompleted:
		a.busy = false
		a.fields[messages.FieldEmployee].Reset()
		a.bar.SetState(status.StateReady, msg.Status)
		return a, nil

	case messages.AnswerReceived:
		a.busy = false
		a.fields[messages.FieldQuestion].Reset()
		a.bar.SetState(status.StateReady, "")
		return a, nil
	}

	var cmd tea.Cmd
	a.fields[a.focus], cmd = a.fields[a.focus].Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.NextField):
		return a, a.setFocus(a.focus.Next())
	case keymap.Matches(k, a.keymap.PrevField):
		return a, a.setFocus(a.focus.Prev())
	case keymap.Matches(k, a.keymap.Clear):
		a.fields[a.focus].Reset()
		return a, nil
	case keymap.Matches(k, a.keymap.Submit):
		return a, a.submit()
	}

	var cmd tea.Cmd
	a.fields[a.focus], cmd = a.fields[a.focus].Update(msg)
	return a, cmd
}

func (a *App) setFocus(f messages.Field) tea.Cmd {
	a.fields[a.focus].Blur()
	a.focus = f
	return a.fields[a.focus].Focus()
}

// submit runs the action of the focused field. Only one dispatcher call is
// in flight at a time.
func (a *App) submit() tea.Cmd {
	value := strings.TrimSpace(a.fields[a.focus].Value())

	switch a.focus {
	case messages.FieldAPIKey:
		a.apiKey = value
		a.refreshIndicators()
		if value == "" {
			a.bar.SetState(status.StateReady, "Key cleared.")
			return nil
		}
		a.bar.SetState(status.StateReady, "Key saved.")
		return a.setFocus(messages.FieldEmployee)

	case messages.FieldEmployee:
		if a.busy {
			return nil
		}
		if value == "" {
			a.bar.SetState(status.StateError, domain.MsgEnterName)
			return nil
		}
		a.busy = true
		a.bar.SetState(status.StateWorking, "Onboarding "+value+"...")
		return a.onboard(value)

	case messages.FieldQuestion:
		if a.busy || value == "" {
			return nil
		}
		a.busy = true
		a.bar.SetState(status.StateWorking, "Asking HR...")
		return a.ask(value)
	}
	return nil
}

func (a *App) onboard(employee string) tea.Cmd {
	ctx, sess, key := a.ctx, a.ports.Session, a.apiKey
	pool := a.ports.Pool
	return func() tea.Msg {
		st := pool.ForKey(ctx, key, sess).RunOnboardingSequence(ctx, sess, employee)
		return messages.OnboardingCompleted{Employee: employee, Status: st}
	}
}

func (a *App) ask(query string) tea.Cmd {
	ctx, sess, key := a.ctx, a.ports.Session, a.apiKey
	pool := a.ports.Pool
	return func() tea.Msg {
		answer := pool.ForKey(ctx, key, sess).Ask(ctx, sess, query)
		return messages.AnswerReceived{Query: query, Answer: answer}
	}
}

func (a *App) refreshIndicators() {
	a.bar.SetIndicators(a.ports.Pool.Actions().Authenticated(), a.apiKey != "")
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	a.refreshIndicators()

	bodyHeight := a.height - 2
	if bodyHeight < 8 {
		bodyHeight = 8
	}

	sidebar := a.viewSidebar()
	rest := a.width - sidebarWidth - 2
	if rest < 40 {
		body := lipgloss.JoinVertical(lipgloss.Left, sidebar, a.viewChat(a.width-4, bodyHeight/2),
			a.viewTrace(a.width-4, bodyHeight/2))
		return lipgloss.JoinVertical(lipgloss.Left, body, a.bar.View())
	}

	chatWidth := rest / 2
	traceWidth := rest - chatWidth
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sidebar,
		a.viewChat(chatWidth-4, bodyHeight-2),
		a.viewTrace(traceWidth-4, bodyHeight-2),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.bar.View())
}

func (a *App) viewSidebar() string {
	parts := []string{
		a.styles.Title.Render("OnboardAI"),
		a.styles.Muted.Render("HR onboarding assistant"),
		"",
	}
	for _, f := range a.fields {
		parts = append(parts, f.View())
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) viewChat(width, height int) string {
	lines := []string{a.styles.Subtitle.Render("Policy chat")}
	for _, turn := range a.ports.Session.Chat() {
		switch turn.Role {
		case domain.RoleUser:
			lines = append(lines, a.styles.UserTurn.Render("You: "+turn.Text))
		case domain.RoleAssistant:
			lines = append(lines, a.styles.AssistantTurn.Width(width).Render(turn.Text))
		}
	}
	// Oldest first; keep the tail in view.
	lines = tail(lines, height)
	return a.styles.Panel.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (a *App) viewTrace(width, height int) string {
	lines := []string{a.styles.Subtitle.Render("Agent trace")}
	for _, e := range a.ports.Session.TraceNewestFirst() {
		if len(lines) >= height {
			break
		}
		lines = append(lines, a.renderEntry(e))
	}
	return a.styles.Panel.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (a *App) renderEntry(e domain.TraceEntry) string {
	return fmt.Sprintf("%s %s: %s -> %s",
		a.styles.Muted.Render("["+e.Timestamp.Format("15:04:05")+"]"),
		a.styles.Actor.Render(e.Actor),
		e.Action,
		e.Detail,
	)
}

func tail(lines []string, n int) []string {
	if n <= 1 || len(lines) <= n {
		return lines
	}
	// Keep the panel title.
	return append([]string{lines[0]}, lines[len(lines)-n+1:]...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Focus returns the focused input.
func (a *App) Focus() messages.Field {
	return a.focus
}

// APIKey returns the key in effect.
func (a *App) APIKey() string {
	return a.apiKey
}

// Busy reports whether a dispatcher call is in flight.
func (a *App) Busy() bool {
	return a.busy
}

// Status returns the status bar state and message.
func (a *App) Status() (status.State, string) {
	return a.bar.State(), a.bar.Message()
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.bar.SetWidth(width)
	for _, f := range a.fields {
		f.SetWidth(sidebarWidth - 2)
	}
}
