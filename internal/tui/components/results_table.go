package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"screencmp/internal/screen"
)

var (
	resultsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	resultsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	resultsHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Underline(true)

	resultsErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Italic(true)
)

// ResultsTable renders the pipeline's published snapshot: the derived
// dimensions for every screen, or the aggregate error message. Display
// rounding to two decimals happens here, never in the calculator.
type ResultsTable struct {
	snapshot screen.Snapshot
	width    int
	height   int
}

// NewResultsTable creates the table from an initial snapshot.
func NewResultsTable(snapshot screen.Snapshot) *ResultsTable {
	return &ResultsTable{snapshot: snapshot, width: 60}
}

// SetSnapshot replaces the displayed snapshot wholesale.
func (rt *ResultsTable) SetSnapshot(snapshot screen.Snapshot) {
	rt.snapshot = snapshot
}

// SetSize sets the rendered dimensions.
func (rt *ResultsTable) SetSize(width, height int) {
	rt.width = width
	rt.height = height
}

// View renders the table or the error message, never both.
func (rt *ResultsTable) View() string {
	var b strings.Builder
	b.WriteString(resultsTitleStyle.Render("DIMENSIONS"))
	b.WriteString("\n\n")

	if rt.snapshot.State == screen.StateInvalid {
		b.WriteString(resultsErrorStyle.Render(rt.snapshot.Message))
		return resultsBoxStyle.Width(rt.width - 2).Render(b.String())
	}

	b.WriteString(resultsHeaderStyle.Render(fmt.Sprintf(
		"%-3s %-8s %-7s %9s %9s %11s",
		"", "size", "ratio", "width", "height", "area",
	)))
	b.WriteString("\n")

	for _, d := range rt.snapshot.Screens {
		marker := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render("■")
		b.WriteString(fmt.Sprintf(
			"%s   %-8s %-7s %8.2f\" %8.2f\" %7.2f in²\n",
			marker,
			formatNumber(d.Diagonal)+"\"",
			formatNumber(d.AspectX)+":"+formatNumber(d.AspectY),
			d.Width,
			d.Height,
			d.Area,
		))
	}

	return resultsBoxStyle.Width(rt.width - 2).Render(strings.TrimRight(b.String(), "\n"))
}
