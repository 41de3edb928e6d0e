package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"screencmp/internal/screen"
)

func validSnapshot() screen.Snapshot {
	col := screen.NewCollectionFrom(testSpecs())
	p := screen.NewPipeline(col)
	defer p.Stop()
	return p.Snapshot()
}

func TestResultsTable_ValidSnapshot(t *testing.T) {
	rt := NewResultsTable(validSnapshot())
	rt.SetSize(70, 10)

	view := rt.View()
	assert.Contains(t, view, "DIMENSIONS")
	assert.Contains(t, view, "width")
	assert.Contains(t, view, "area")
	assert.Contains(t, view, "16:9")
	// 24" 16:9 → 20.92 x 11.77, 2-decimal display rounding
	assert.Contains(t, view, "20.92")
	assert.Contains(t, view, "11.77")
	// 27" 16:9 → 23.53 x 13.24
	assert.Contains(t, view, "23.53")
	assert.Contains(t, view, "311.50")
}

func TestResultsTable_InvalidSnapshotShowsOnlyMessage(t *testing.T) {
	rt := NewResultsTable(screen.Snapshot{
		State:   screen.StateInvalid,
		Message: screen.MsgPositiveValues,
	})
	rt.SetSize(70, 10)

	view := rt.View()
	assert.Contains(t, view, screen.MsgPositiveValues)
	assert.NotContains(t, view, "width", "error state never renders the table")
}

func TestResultsTable_SetSnapshotReplacesWholesale(t *testing.T) {
	rt := NewResultsTable(validSnapshot())
	rt.SetSize(70, 10)

	rt.SetSnapshot(screen.Snapshot{State: screen.StateInvalid, Message: screen.MsgFixFields})
	view := rt.View()
	assert.Contains(t, view, screen.MsgFixFields)
	assert.False(t, strings.Contains(view, "20.92"), "stale derived values are discarded")
}
