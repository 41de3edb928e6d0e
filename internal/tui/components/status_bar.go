package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"screencmp/internal/screen"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Background(lipgloss.Color("236")).
				Bold(true)

	statusCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("236"))
)

// StatusBar shows key hints, the screen count against the cap, and a
// transient error message.
type StatusBar struct {
	width     int
	count     int
	inputMode bool
	message   string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetWidth sets the width of the status bar.
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetCount sets the current screen count shown against MaxScreens.
func (sb *StatusBar) SetCount(count int) {
	sb.count = count
}

// SetInputMode switches the hints between navigation and editing.
func (sb *StatusBar) SetInputMode(editing bool) {
	sb.inputMode = editing
}

// SetMessage sets a transient message (capacity errors and the like).
// An empty string clears it.
func (sb *StatusBar) SetMessage(msg string) {
	sb.message = msg
}

// View renders the status bar.
func (sb *StatusBar) View() string {
	hints := "a:add d:delete r:reset ↑/↓:screen ←/→:field enter:edit q:quit"
	if sb.inputMode {
		hints = "type to edit tab:next field enter/esc:done"
	}

	count := fmt.Sprintf(" %d/%d", sb.count, screen.MaxScreens)
	if sb.count >= screen.MaxScreens {
		count += " (full)"
	}

	line := hints
	if sb.message != "" {
		line = hints + "  " + statusErrorStyle.Render(sb.message)
	}
	line += statusCountStyle.Render(count)

	if lipgloss.Width(line) > sb.width-2 && sb.width > 5 {
		// Truncate on rune boundaries; the hints contain multibyte arrows.
		runes := []rune(hints)
		line = string(runes[:min(len(runes), sb.width-5)]) + "..."
	}

	return statusBarStyle.Width(sb.width).Render(line)
}
