package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/onboardai/onboard/internal/core/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2F6FED"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8F98"))
	actorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7EE2A8"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E27E7E"))
)

// traceLine renders one trace entry for the terminal.
func traceLine(e domain.TraceEntry) string {
	detail := e.Detail
	switch {
	case strings.HasPrefix(detail, "✅"):
		detail = okStyle.Render(detail)
	case strings.HasPrefix(detail, "❌"), strings.HasPrefix(detail, "⚠️"):
		detail = failStyle.Render(detail)
	}
	return fmt.Sprintf("%s %s: %s -> %s",
		mutedStyle.Render("["+e.Timestamp.Format("15:04:05")+"]"),
		actorStyle.Render(e.Actor), e.Action, detail)
}

// yesNo renders a boolean for status output.
func yesNo(b bool) string {
	if b {
		return okStyle.Render("yes")
	}
	return failStyle.Render("no")
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// readSecret prompts on w and reads a line from stdin without echo when
// stdin is a terminal.
func readSecret(w io.Writer, prompt string) string {
	fmt.Fprint(w, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(w)
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
