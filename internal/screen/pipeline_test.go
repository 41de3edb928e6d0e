package screen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelinePublishesInitialValidSnapshot(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col)
	defer p.Stop()

	snap := p.Snapshot()
	assert.Equal(t, StateValid, snap.State)
	assert.Empty(t, snap.Message)
	require.Len(t, snap.Screens, 2)
	assert.Equal(t, col.Specs()[0].ID, snap.Screens[0].ID)
	assert.InDelta(t, 20.9178, snap.Screens[0].Width, 0.001)
	assert.InDelta(t, 11.7663, snap.Screens[0].Height, 0.001)
}

func TestPipelineInvalidOnNonPositiveValue(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col)
	defer p.Stop()

	require.Equal(t, StateValid, p.Snapshot().State)

	diag := -5.0
	require.NoError(t, col.Update(col.Specs()[0].ID, Patch{Diagonal: &diag}))
	snap := p.RecomputeNow()

	assert.Equal(t, StateInvalid, snap.State)
	assert.Equal(t, MsgPositiveValues, snap.Message)
	assert.Empty(t, snap.Screens, "derived results are cleared, not partially kept")
}

func TestPipelineFieldErrorsTakePrecedence(t *testing.T) {
	col := NewCollection()
	var fieldErrs []FieldError
	p := NewPipeline(col, WithFieldErrorSource(func() []FieldError {
		return fieldErrs
	}))
	defer p.Stop()

	fieldErrs = []FieldError{{ScreenID: col.Specs()[0].ID, Field: "diagonal", Reason: "is not a number"}}
	snap := p.RecomputeNow()
	assert.Equal(t, StateInvalid, snap.State)
	assert.Equal(t, MsgFixFields, snap.Message)

	// The two invalid messages are distinct: once the raw input parses,
	// a non-positive value produces the value message instead.
	fieldErrs = nil
	diag := 0.0
	require.NoError(t, col.Update(col.Specs()[0].ID, Patch{Diagonal: &diag}))
	snap = p.RecomputeNow()
	assert.Equal(t, StateInvalid, snap.State)
	assert.Equal(t, MsgPositiveValues, snap.Message)
}

func TestPipelineInvalidToValidTransition(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col)
	defer p.Stop()

	id := col.Specs()[0].ID
	bad := -1.0
	require.NoError(t, col.Update(id, Patch{Diagonal: &bad}))
	require.Equal(t, StateInvalid, p.RecomputeNow().State)

	good := 27.0
	require.NoError(t, col.Update(id, Patch{Diagonal: &good}))
	snap := p.RecomputeNow()

	require.Equal(t, StateValid, snap.State)
	specs := col.Specs()
	require.Len(t, snap.Screens, len(specs))
	for i := range specs {
		assert.Equal(t, specs[i].ID, snap.Screens[i].ID, "derived list matches store order")
	}
}

func TestPipelineRecomputeIsIdempotent(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col)
	defer p.Stop()

	first := p.RecomputeNow()
	second := p.RecomputeNow()
	assert.Equal(t, first, second)
}

func TestPipelineDebounceCoalescesBursts(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col, WithDebounce(30*time.Millisecond))
	defer p.Stop()

	baseline := p.Recomputes()
	id := col.Specs()[0].ID

	// Simulate consecutive keystrokes: 2, 26, 26.5.
	for _, v := range []float64{2, 26, 26.5} {
		v := v
		require.NoError(t, col.Update(id, Patch{Diagonal: &v}))
	}

	// Inside the window nothing ran yet.
	assert.Equal(t, baseline, p.Recomputes())

	require.Eventually(t, func() bool {
		return p.Recomputes() == baseline+1
	}, time.Second, 5*time.Millisecond, "burst must coalesce into exactly one recompute")

	snap := p.Snapshot()
	require.Equal(t, StateValid, snap.State)
	assert.Equal(t, 26.5, snap.Screens[0].Diagonal, "last write wins")

	// And no further recompute sneaks in afterwards.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, baseline+1, p.Recomputes())
}

func TestPipelineFlushRunsPendingRecomputeImmediately(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col, WithDebounce(time.Hour))
	defer p.Stop()

	diag := 19.5
	require.NoError(t, col.Update(col.Specs()[0].ID, Patch{Diagonal: &diag}))
	assert.NotEqual(t, 19.5, p.Snapshot().Screens[0].Diagonal, "debounced recompute has not run")

	p.Flush()
	snap := p.Snapshot()
	require.Equal(t, StateValid, snap.State)
	assert.Equal(t, 19.5, snap.Screens[0].Diagonal)
}

func TestPipelineUpdatesChannelDeliversLatest(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col, WithDebounce(5*time.Millisecond))
	defer p.Stop()

	// Drain the initial snapshot.
	select {
	case <-p.Updates():
	default:
	}

	diag := 31.5
	require.NoError(t, col.Update(col.Specs()[0].ID, Patch{Diagonal: &diag}))

	select {
	case snap := <-p.Updates():
		assert.Equal(t, StateValid, snap.State)
		assert.Equal(t, 31.5, snap.Screens[0].Diagonal)
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot on the updates channel")
	}
}

func TestTriggerCapturesStateOnCallerGoroutine(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col, WithDebounce(20*time.Millisecond))
	defer p.Stop()

	id := col.Specs()[0].ID
	diag := 30.0
	require.NoError(t, col.Update(id, Patch{Diagonal: &diag}))

	// Detach the pipeline and mutate again: the pending recompute must run
	// over the state captured when Trigger was called, never read the
	// collection from the timer goroutine.
	col.SetOnChange(nil)
	later := 40.0
	require.NoError(t, col.Update(id, Patch{Diagonal: &later}))

	require.Eventually(t, func() bool {
		snap := p.Snapshot()
		return snap.State == StateValid && len(snap.Screens) > 0 && snap.Screens[0].Diagonal == 30.0
	}, time.Second, 5*time.Millisecond, "recompute must use the state captured at trigger time")

	assert.Equal(t, 40.0, col.Specs()[0].Diagonal, "collection holds the later value")
}

func TestPipelineEditsDuringOpenDebounceWindows(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col, WithDebounce(time.Millisecond))
	defer p.Stop()

	// Keep mutating while earlier windows close, so recomputes overlap the
	// edit stream. The timer goroutine must only see captured copies.
	id := col.Specs()[0].ID
	for i := 1; i <= 50; i++ {
		diag := float64(i)
		require.NoError(t, col.Update(id, Patch{Diagonal: &diag}))
		if i%10 == 0 {
			time.Sleep(3 * time.Millisecond)
		}
	}

	p.Flush()
	snap := p.Snapshot()
	require.Equal(t, StateValid, snap.State)
	assert.Equal(t, 50.0, snap.Screens[0].Diagonal, "last write wins")
}

func TestPipelineCapacityErrorLeavesStateValid(t *testing.T) {
	col := NewCollection()
	p := NewPipeline(col)
	defer p.Stop()

	for col.Len() < MaxScreens {
		_, err := col.AddDefault()
		require.NoError(t, err)
	}
	_, err := col.AddDefault()
	require.ErrorIs(t, err, ErrCollectionFull)

	snap := p.RecomputeNow()
	assert.Equal(t, StateValid, snap.State)
	assert.Len(t, snap.Screens, MaxScreens)
}
