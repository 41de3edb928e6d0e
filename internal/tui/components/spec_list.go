package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"screencmp/internal/screen"
)

// Field names a single editable column of a spec row. The values double as
// the FieldError field identifiers reported to the pipeline.
const (
	FieldDiagonal = "diagonal"
	FieldAspectX  = "aspect_x"
	FieldAspectY  = "aspect_y"
	FieldColor    = "color"
)

// fieldOrder is the left-to-right tab order within a row.
var fieldOrder = []string{FieldDiagonal, FieldAspectX, FieldAspectY, FieldColor}

// FieldEditedMsg is emitted after a keystroke changed a field's raw text.
// The model owns parsing and the store update.
type FieldEditedMsg struct {
	ScreenID string
	Field    string
	Raw      string
}

var (
	listBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	listBoxFocusedStyle = listBoxStyle.
				BorderForeground(lipgloss.Color("39"))

	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	rowSelectedStyle = lipgloss.NewStyle().
				Bold(true)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// specRow holds the editable inputs for one screen entry.
type specRow struct {
	id     string
	color  string
	inputs map[string]*textinput.Model
	errors map[string]string // field -> reason, raw input that failed to parse
}

func newSpecRow(spec screen.Spec) *specRow {
	row := &specRow{
		id:     spec.ID,
		color:  spec.Color,
		inputs: make(map[string]*textinput.Model),
		errors: make(map[string]string),
	}

	widths := map[string]int{
		FieldDiagonal: 6,
		FieldAspectX:  4,
		FieldAspectY:  4,
		FieldColor:    5,
	}
	values := map[string]string{
		FieldDiagonal: formatNumber(spec.Diagonal),
		FieldAspectX:  formatNumber(spec.AspectX),
		FieldAspectY:  formatNumber(spec.AspectY),
		FieldColor:    spec.Color,
	}

	for _, field := range fieldOrder {
		ti := textinput.New()
		ti.CharLimit = 8
		ti.Width = widths[field]
		ti.Prompt = ""
		ti.SetValue(values[field])
		row.inputs[field] = &ti
	}
	return row
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SpecList is the editable list of screen specifications, one row per
// entry. It is the only place raw input text lives; parsed values go
// straight to the collection store, which stays the single source of truth.
type SpecList struct {
	rows     []*specRow
	focusRow int
	focusCol int
	editing  bool
	width    int
	height   int
}

// NewSpecList creates the list from the current collection entries.
func NewSpecList(specs []screen.Spec) *SpecList {
	sl := &SpecList{width: 40}
	sl.SetSpecs(specs)
	return sl
}

// SetSpecs rebuilds the rows from the store, keeping focus on the same
// entry when it survived the change. Used after add/remove/reset/profile
// reload; per-keystroke edits never rebuild, so the cursor is undisturbed
// while typing.
func (sl *SpecList) SetSpecs(specs []screen.Spec) {
	focusedID := sl.SelectedID()

	rows := make([]*specRow, len(specs))
	for i, spec := range specs {
		rows[i] = newSpecRow(spec)
	}
	sl.rows = rows

	sl.focusRow = 0
	for i, row := range sl.rows {
		if row.id == focusedID {
			sl.focusRow = i
			break
		}
	}
	if sl.focusCol >= len(fieldOrder) {
		sl.focusCol = 0
	}
	sl.applyFocus()
}

// SetSize sets the rendered dimensions.
func (sl *SpecList) SetSize(width, height int) {
	sl.width = width
	sl.height = height
}

// Len returns the number of rows.
func (sl *SpecList) Len() int {
	return len(sl.rows)
}

// SelectedID returns the id of the focused entry, or "" when empty.
func (sl *SpecList) SelectedID() string {
	if sl.focusRow < 0 || sl.focusRow >= len(sl.rows) {
		return ""
	}
	return sl.rows[sl.focusRow].id
}

// Editing reports whether keystrokes currently feed the focused field.
func (sl *SpecList) Editing() bool {
	return sl.editing
}

// StartEditing focuses the selected field for typing.
func (sl *SpecList) StartEditing() tea.Cmd {
	sl.editing = true
	return sl.applyFocus()
}

// StopEditing blurs all inputs and returns to row navigation.
func (sl *SpecList) StopEditing() {
	sl.editing = false
	sl.applyFocus()
}

// MoveRow moves the selection up (-1) or down (+1).
func (sl *SpecList) MoveRow(delta int) {
	if len(sl.rows) == 0 {
		return
	}
	sl.focusRow = clamp(sl.focusRow+delta, 0, len(sl.rows)-1)
	sl.applyFocus()
}

// MoveField moves the focused field left (-1) or right (+1), wrapping
// within the row.
func (sl *SpecList) MoveField(delta int) {
	n := len(fieldOrder)
	sl.focusCol = ((sl.focusCol+delta)%n + n) % n
	sl.applyFocus()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// applyFocus syncs textinput focus state with the selection.
func (sl *SpecList) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i, row := range sl.rows {
		for j, field := range fieldOrder {
			input := row.inputs[field]
			if sl.editing && i == sl.focusRow && j == sl.focusCol {
				cmd = input.Focus()
			} else {
				input.Blur()
			}
		}
	}
	return cmd
}

// Update routes a message to the focused input. When the keystroke changed
// the raw text it emits a FieldEditedMsg for the model to parse and apply.
func (sl *SpecList) Update(msg tea.Msg) (*SpecList, tea.Cmd) {
	if !sl.editing || sl.focusRow >= len(sl.rows) {
		return sl, nil
	}

	row := sl.rows[sl.focusRow]
	field := fieldOrder[sl.focusCol]
	input := row.inputs[field]

	before := input.Value()
	updated, cmd := input.Update(msg)
	*input = updated

	if input.Value() == before {
		return sl, cmd
	}

	// Capture before creating the closure; the focused row can change
	// before the message is delivered.
	raw := input.Value()
	capturedID := row.id
	capturedField := field
	edited := func() tea.Msg {
		return FieldEditedMsg{ScreenID: capturedID, Field: capturedField, Raw: raw}
	}
	return sl, tea.Batch(cmd, edited)
}

// SetFieldError records a parse failure for a field so it can be
// highlighted and aggregated into the pipeline's Invalid state.
func (sl *SpecList) SetFieldError(id, field, reason string) {
	for _, row := range sl.rows {
		if row.id == id {
			row.errors[field] = reason
			return
		}
	}
}

// ClearFieldError removes a recorded parse failure.
func (sl *SpecList) ClearFieldError(id, field string) {
	for _, row := range sl.rows {
		if row.id == id {
			delete(row.errors, field)
			return
		}
	}
}

// FieldErrors aggregates the current raw-input failures. The pipeline uses
// this as its field error source.
func (sl *SpecList) FieldErrors() []screen.FieldError {
	var errs []screen.FieldError
	for _, row := range sl.rows {
		for _, field := range fieldOrder {
			if reason, ok := row.errors[field]; ok {
				errs = append(errs, screen.FieldError{ScreenID: row.id, Field: field, Reason: reason})
			}
		}
	}
	return errs
}

// SetColor updates a row's marker color after a color edit is applied.
func (sl *SpecList) SetColor(id, color string) {
	for _, row := range sl.rows {
		if row.id == id {
			row.color = color
			return
		}
	}
}

// View renders the list.
func (sl *SpecList) View() string {
	var b strings.Builder
	b.WriteString(listTitleStyle.Render("SCREENS"))
	b.WriteString("\n\n")

	for i, row := range sl.rows {
		b.WriteString(sl.renderRow(i, row))
		b.WriteString("\n")
	}

	style := listBoxStyle
	if sl.editing {
		style = listBoxFocusedStyle
	}
	return style.Width(sl.width - 2).Render(strings.TrimRight(b.String(), "\n"))
}

func (sl *SpecList) renderRow(index int, row *specRow) string {
	marker := lipgloss.NewStyle().Foreground(lipgloss.Color(row.color)).Render("■")

	cursor := "  "
	if index == sl.focusRow {
		cursor = "> "
	}

	segment := func(field, label string) string {
		labelStyle := fieldLabelStyle
		if _, bad := row.errors[field]; bad {
			labelStyle = fieldErrorStyle
		}
		return labelStyle.Render(label) + row.inputs[field].View()
	}

	line := fmt.Sprintf("%s%s %s %s%s%s %s",
		cursor,
		marker,
		segment(FieldDiagonal, "size:"),
		segment(FieldAspectX, "ratio:"),
		fieldLabelStyle.Render(":"),
		row.inputs[FieldAspectY].View(),
		segment(FieldColor, "color:"),
	)
	if _, bad := row.errors[FieldAspectY]; bad {
		// AspectY shares the ratio label; mark the row instead.
		line += fieldErrorStyle.Render(" !")
	}

	if index == sl.focusRow && !sl.editing {
		return rowSelectedStyle.Render(line)
	}
	return line
}
