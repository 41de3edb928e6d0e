package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screencmp/internal/screen"
)

func testSpecs() []screen.Spec {
	return []screen.Spec{
		*screen.NewSpec(24, 16, 9, "39"),
		*screen.NewSpec(27, 16, 9, "204"),
	}
}

// collectMsgs runs a command tree and gathers the produced messages.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, collectMsgs(t, sub)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestSpecList_New(t *testing.T) {
	specs := testSpecs()
	sl := NewSpecList(specs)

	assert.Equal(t, 2, sl.Len())
	assert.Equal(t, specs[0].ID, sl.SelectedID())
	assert.False(t, sl.Editing())
	assert.Empty(t, sl.FieldErrors())
}

func TestSpecList_MoveRowClamps(t *testing.T) {
	specs := testSpecs()
	sl := NewSpecList(specs)

	sl.MoveRow(-1)
	assert.Equal(t, specs[0].ID, sl.SelectedID())

	sl.MoveRow(1)
	assert.Equal(t, specs[1].ID, sl.SelectedID())

	sl.MoveRow(1)
	assert.Equal(t, specs[1].ID, sl.SelectedID(), "selection stops at the last row")
}

func TestSpecList_MoveFieldWraps(t *testing.T) {
	sl := NewSpecList(testSpecs())

	require.Equal(t, 0, sl.focusCol)
	sl.MoveField(-1)
	assert.Equal(t, len(fieldOrder)-1, sl.focusCol)
	sl.MoveField(1)
	assert.Equal(t, 0, sl.focusCol)
}

func TestSpecList_TypingEmitsFieldEditedMsg(t *testing.T) {
	specs := testSpecs()
	sl := NewSpecList(specs)
	sl.StartEditing()

	sl, cmd := sl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	msgs := collectMsgs(t, cmd)

	var edited *FieldEditedMsg
	for _, msg := range msgs {
		if e, ok := msg.(FieldEditedMsg); ok {
			edited = &e
		}
	}
	require.NotNil(t, edited, "expected a FieldEditedMsg after a keystroke")
	assert.Equal(t, specs[0].ID, edited.ScreenID)
	assert.Equal(t, FieldDiagonal, edited.Field)
	assert.Equal(t, "245", edited.Raw, "rune appends to the existing value")
}

func TestSpecList_NoMsgWhenNotEditing(t *testing.T) {
	sl := NewSpecList(testSpecs())

	_, cmd := sl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	assert.Nil(t, cmd, "keystrokes are ignored outside edit mode")
}

func TestSpecList_FieldErrors(t *testing.T) {
	specs := testSpecs()
	sl := NewSpecList(specs)

	sl.SetFieldError(specs[0].ID, FieldDiagonal, "must be a number")
	sl.SetFieldError(specs[1].ID, FieldAspectX, "is required")

	errs := sl.FieldErrors()
	require.Len(t, errs, 2)
	assert.Equal(t, specs[0].ID, errs[0].ScreenID)
	assert.Equal(t, FieldDiagonal, errs[0].Field)

	sl.ClearFieldError(specs[0].ID, FieldDiagonal)
	assert.Len(t, sl.FieldErrors(), 1)
}

func TestSpecList_SetSpecsPreservesSelectionByID(t *testing.T) {
	specs := testSpecs()
	sl := NewSpecList(specs)
	sl.MoveRow(1)

	// Entry 0 removed; the selected entry survives at a new position.
	sl.SetSpecs(specs[1:])
	assert.Equal(t, specs[1].ID, sl.SelectedID())
	assert.Equal(t, 1, sl.Len())
}

func TestSpecList_SetSpecsClearsStaleErrors(t *testing.T) {
	specs := testSpecs()
	sl := NewSpecList(specs)
	sl.SetFieldError(specs[0].ID, FieldDiagonal, "must be a number")

	sl.SetSpecs(specs[1:])
	assert.Empty(t, sl.FieldErrors(), "errors for removed rows do not linger")
}

func TestSpecList_ViewShowsValues(t *testing.T) {
	sl := NewSpecList(testSpecs())
	sl.SetSize(50, 12)

	view := sl.View()
	assert.Contains(t, view, "SCREENS")
	assert.Contains(t, view, "24")
	assert.Contains(t, view, "27")
	assert.Contains(t, view, "size:")
	assert.Contains(t, view, "ratio:")
}
