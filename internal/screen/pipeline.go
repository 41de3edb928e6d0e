package screen

import (
	"sync"
	"time"

	"screencmp/internal/logger"
	"screencmp/internal/perf"
)

// State is the pipeline's published validation state.
type State int

const (
	// StateValid means every entry validated and Screens holds the full
	// derived list.
	StateValid State = iota
	// StateInvalid means at least one entry failed validation; Screens is
	// empty and Message explains what to fix.
	StateInvalid
)

// User-facing aggregate messages. The two cases are distinct and must not
// be conflated: field errors come from raw input that never parsed, value
// errors from numbers that parsed but are not positive.
const (
	MsgFixFields      = "fix the highlighted fields"
	MsgPositiveValues = "all screens must have positive diagonal and aspect ratio values"
)

// DefaultDebounce is the window within which a burst of change triggers
// coalesces into a single recompute over the latest state.
const DefaultDebounce = 50 * time.Millisecond

// Snapshot is the pipeline's published result: either a full derived list
// (StateValid) or an aggregate error message (StateInvalid), never both.
// A snapshot is immutable once published; each recompute replaces it
// wholesale.
type Snapshot struct {
	State   State
	Screens []Derived
	Message string
}

// Pipeline validates the collection and recomputes derived dimensions on
// every change, debouncing bursts of edits. It owns the Valid/Invalid
// state machine: derived results exist only while every entry validates.
//
// The collection and the field error source belong to a single logical
// owner (the TUI update loop) and are not thread-safe, so they are read
// only on the caller's goroutine: every trigger captures their state into
// pendingSpecs/pendingErrs under the mutex, and the debounce timer's
// background goroutine recomputes over that captured copy.
type Pipeline struct {
	col       *Collection
	fieldErrs func() []FieldError
	window    time.Duration

	mu            sync.Mutex
	debounceTimer *time.Timer
	pendingSpecs  []Spec
	pendingErrs   []FieldError
	snapshot      Snapshot
	updates       chan Snapshot
	recomputes    *perf.Counter
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithDebounce overrides the debounce window. Tests use a tiny window.
func WithDebounce(d time.Duration) PipelineOption {
	return func(p *Pipeline) { p.window = d }
}

// WithFieldErrorSource registers the presentation layer's source of raw
// per-field input errors. When it reports any error the pipeline goes
// Invalid with MsgFixFields before value checks run.
func WithFieldErrorSource(fn func() []FieldError) PipelineOption {
	return func(p *Pipeline) { p.fieldErrs = fn }
}

// NewPipeline creates a pipeline bound to the collection, registers itself
// for change notification, and publishes an initial snapshot.
func NewPipeline(col *Collection, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		col:        col,
		window:     DefaultDebounce,
		updates:    make(chan Snapshot, 1),
		recomputes: perf.NewCounter(),
	}
	for _, opt := range opts {
		opt(p)
	}
	col.SetOnChange(p.Trigger)

	p.mu.Lock()
	p.captureLocked()
	p.recomputeLocked()
	p.mu.Unlock()
	return p
}

// Updates returns the channel snapshots are published on. The channel
// coalesces: when the consumer lags, a newer snapshot replaces the queued
// one, so the latest published state is always what gets delivered.
func (p *Pipeline) Updates() <-chan Snapshot {
	return p.updates
}

// Snapshot returns the most recently published snapshot.
func (p *Pipeline) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// Trigger schedules a recompute over the collection's current state.
// Triggers arriving within the debounce window supersede the pending one:
// each trigger replaces the captured state, so only the last scheduled
// recompute runs, over the latest state. Must be called on the owner
// goroutine, like every other collection read.
func (p *Pipeline) Trigger() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.captureLocked()
	if p.debounceTimer != nil {
		p.debounceTimer.Stop()
	}
	p.debounceTimer = time.AfterFunc(p.window, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.recomputeLocked()
	})
}

// Flush runs any pending debounced recompute immediately. Explicit submit
// paths use it so the published state never trails a completed edit.
func (p *Pipeline) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.debounceTimer != nil {
		p.debounceTimer.Stop()
		p.debounceTimer = nil
	}
	p.captureLocked()
	p.recomputeLocked()
}

// RecomputeNow validates and recomputes synchronously, bypassing the
// debounce window, and returns the published snapshot. Recompute is
// idempotent: with no intervening collection change, running it twice
// publishes the same result.
func (p *Pipeline) RecomputeNow() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.captureLocked()
	p.recomputeLocked()
	return p.snapshot
}

// Stop cancels any pending debounced recompute.
func (p *Pipeline) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.debounceTimer != nil {
		p.debounceTimer.Stop()
		p.debounceTimer = nil
	}
}

// Recomputes reports how many recompute passes have run. Useful for
// asserting debounce coalescing.
func (p *Pipeline) Recomputes() int64 {
	return p.recomputes.Value()
}

// captureLocked copies the collection's entries and the current field
// errors into the pending state the next recompute runs over. Runs on the
// caller's goroutine only; the timer goroutine never touches the
// collection or the field error source. Caller holds p.mu.
func (p *Pipeline) captureLocked() {
	p.pendingSpecs = p.col.Specs()
	p.pendingErrs = nil
	if p.fieldErrs != nil {
		p.pendingErrs = p.fieldErrs()
	}
}

// recomputeLocked runs one full validation and derivation pass over the
// captured state and publishes the result. Caller holds p.mu.
func (p *Pipeline) recomputeLocked() {
	timer := perf.NewTimer("pipeline.recompute", logger.GetLogger(), 10)
	defer timer.Stop()
	p.recomputes.Inc()

	if len(p.pendingErrs) > 0 {
		logger.Debug("pipeline: field errors present", "count", len(p.pendingErrs))
		p.publishLocked(Snapshot{State: StateInvalid, Message: MsgFixFields})
		return
	}

	specs := p.pendingSpecs
	for _, s := range specs {
		if !positive(s.Diagonal) || !positive(s.AspectX) || !positive(s.AspectY) {
			logger.Debug("pipeline: non-positive value", "id", s.ID)
			p.publishLocked(Snapshot{State: StateInvalid, Message: MsgPositiveValues})
			return
		}
	}

	derived := make([]Derived, len(specs))
	for i, s := range specs {
		dims := Calculate(s.Diagonal, s.AspectX, s.AspectY)
		derived[i] = Derived{
			Spec:   s,
			Width:  dims.Width,
			Height: dims.Height,
			Area:   dims.Area,
		}
	}
	p.publishLocked(Snapshot{State: StateValid, Screens: derived})
}

// publishLocked replaces the snapshot and pushes it onto the updates
// channel, displacing an unconsumed older snapshot so the consumer always
// wakes to the latest state. Caller holds p.mu.
func (p *Pipeline) publishLocked(s Snapshot) {
	p.snapshot = s
	select {
	case p.updates <- s:
	default:
		select {
		case <-p.updates:
		default:
		}
		p.updates <- s
	}
}
