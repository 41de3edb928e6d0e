package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"screencmp/internal/screen"
)

var (
	previewBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	previewEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

// Terminal cells are roughly twice as tall as they are wide, so vertical
// extents are halved to keep the drawn rectangles proportional.
const cellAspect = 2.0

// Preview draws every screen as a bordered rectangle scaled to its physical
// size, bottom-aligned side by side, each in the entry's color.
type Preview struct {
	screens []screen.Derived
	width   int
	height  int
}

// NewPreview creates an empty preview pane.
func NewPreview() *Preview {
	return &Preview{width: 80, height: 14}
}

// SetScreens replaces the drawn set. An Invalid pipeline state passes nil,
// which blanks the pane.
func (p *Preview) SetScreens(screens []screen.Derived) {
	p.screens = screens
}

// SetSize sets the rendered dimensions.
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the pane.
func (p *Preview) View() string {
	title := previewTitleStyle.Render("PREVIEW") + "\n\n"

	if len(p.screens) == 0 {
		content := title + previewEmptyStyle.Render("nothing to show")
		return previewBoxStyle.Width(p.width - 2).Render(content)
	}

	availCols := p.width - 6
	availRows := p.height - 6
	if availCols < 8 {
		availCols = 8
	}
	if availRows < 3 {
		availRows = 3
	}

	scale := p.fitScale(availCols, availRows)

	boxes := make([]string, len(p.screens))
	for i, d := range p.screens {
		boxes[i] = p.renderScreen(d, scale)
	}

	content := title + lipgloss.JoinHorizontal(lipgloss.Bottom, boxes...)
	return previewBoxStyle.Width(p.width - 2).Render(content)
}

// fitScale picks columns-per-inch so the row of rectangles fits both axes.
func (p *Preview) fitScale(availCols, availRows int) float64 {
	totalWidth := 0.0
	maxHeight := 0.0
	for _, d := range p.screens {
		totalWidth += d.Width
		if d.Height > maxHeight {
			maxHeight = d.Height
		}
	}
	if totalWidth <= 0 || maxHeight <= 0 {
		return 1
	}

	// Each rectangle carries 2 border columns plus a 1-column gap.
	chrome := float64(3 * len(p.screens))
	byWidth := (float64(availCols) - chrome) / totalWidth
	byHeight := float64(availRows) * cellAspect / maxHeight

	scale := byWidth
	if byHeight < scale {
		scale = byHeight
	}
	if scale <= 0 {
		scale = 0.1
	}
	return scale
}

func (p *Preview) renderScreen(d screen.Derived, scale float64) string {
	cols := int(d.Width*scale + 0.5)
	rows := int(d.Height*scale/cellAspect + 0.5)
	if cols < 4 {
		cols = 4
	}
	if rows < 1 {
		rows = 1
	}

	label := fmt.Sprintf("%s\"", formatNumber(d.Diagonal))
	if len(label) > cols {
		label = strings.Repeat(" ", cols)
	}

	inner := label + strings.Repeat(" ", cols-len(label)) +
		strings.Repeat("\n"+strings.Repeat(" ", cols), rows-1)

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(d.Color)).
		Foreground(lipgloss.Color(d.Color)).
		Render(inner)

	return box + " "
}
