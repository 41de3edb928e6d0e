package screen

import (
	"fmt"

	"screencmp/internal/logger"
)

// Preset diagonals for the initial collection.
const (
	presetFirstDiagonal  = 24.0
	presetSecondDiagonal = 27.0
)

// Collection is the ordered, capped set of screen specs. It is the single
// owner of entry data: the presentation layer holds no independent copy
// between recomputes, and all reads and writes go through its operations.
//
// Note: Collection methods are not thread-safe. A single logical owner
// (the TUI update loop) performs all mutations; if concurrent access is
// required, external synchronization must be provided by the caller.
type Collection struct {
	specs    []Spec
	onChange func()
}

// NewCollection creates a collection holding the two preset screens
// (24" and 27", both 16:9, colors from the start of the cycle).
func NewCollection() *Collection {
	c := &Collection{}
	c.specs = c.presets()
	return c
}

// NewCollectionFrom creates a collection seeded with the given specs,
// typically loaded from a profile. Falls back to the presets when no specs
// are given; specs beyond MaxScreens are dropped.
func NewCollectionFrom(specs []Spec) *Collection {
	c := &Collection{}
	c.Seed(specs)
	return c
}

func (c *Collection) presets() []Spec {
	return []Spec{
		*NewSpec(presetFirstDiagonal, DefaultAspectX, DefaultAspectY, ColorForIndex(0)),
		*NewSpec(presetSecondDiagonal, DefaultAspectX, DefaultAspectY, ColorForIndex(1)),
	}
}

// SetOnChange registers a callback invoked after every successful mutation.
// The recompute pipeline uses it to schedule validation. The callback runs
// after the mutation is fully applied, so an observer never sees a
// partially-updated collection.
func (c *Collection) SetOnChange(fn func()) {
	c.onChange = fn
}

func (c *Collection) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Len returns the number of screens.
func (c *Collection) Len() int {
	return len(c.specs)
}

// Specs returns a copy of the entries in display order.
func (c *Collection) Specs() []Spec {
	out := make([]Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Get returns the entry with the given id.
func (c *Collection) Get(id string) (Spec, error) {
	for _, s := range c.specs {
		if s.ID == id {
			return s, nil
		}
	}
	return Spec{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
}

// Add appends a spec. Returns ErrCollectionFull, leaving the collection
// unchanged, when the cap is reached.
func (c *Collection) Add(spec *Spec) error {
	if len(c.specs) >= MaxScreens {
		return ErrCollectionFull
	}
	c.specs = append(c.specs, *spec)
	logger.Debug("collection: screen added", "id", spec.ID, "count", len(c.specs))
	c.notify()
	return nil
}

// AddDefault appends a new screen with default values and the next cycled
// color. The color ordinal is the collection length at creation time, not
// the entry's eventual position.
func (c *Collection) AddDefault() (*Spec, error) {
	spec := NewDefaultSpec(len(c.specs))
	if err := c.Add(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// Remove deletes the entry with the given id. Removing the last remaining
// entry is refused: the collection never becomes empty. Surviving entries
// keep their ids and relative order.
func (c *Collection) Remove(id string) error {
	if len(c.specs) <= 1 {
		return ErrLastScreen
	}
	for i, s := range c.specs {
		if s.ID == id {
			c.specs = append(c.specs[:i], c.specs[i+1:]...)
			logger.Debug("collection: screen removed", "id", id, "count", len(c.specs))
			c.notify()
			return nil
		}
	}
	return fmt.Errorf("remove %q: %w", id, ErrNotFound)
}

// Update replaces the named fields of the entry matching id; nil patch
// fields are left unchanged. Returns ErrNotFound, with no mutation, when
// the id is absent.
func (c *Collection) Update(id string, patch Patch) error {
	for i := range c.specs {
		if c.specs[i].ID != id {
			continue
		}
		if patch.Diagonal != nil {
			c.specs[i].Diagonal = *patch.Diagonal
		}
		if patch.AspectX != nil {
			c.specs[i].AspectX = *patch.AspectX
		}
		if patch.AspectY != nil {
			c.specs[i].AspectY = *patch.AspectY
		}
		if patch.Color != nil {
			c.specs[i].Color = *patch.Color
		}
		c.notify()
		return nil
	}
	return fmt.Errorf("update %q: %w", id, ErrNotFound)
}

// Seed replaces all entries with the given specs, falling back to the
// presets when none are given. Used when a reloaded profile supplies new
// startup screens; the replacement is atomic like every other mutation.
func (c *Collection) Seed(specs []Spec) {
	if len(specs) == 0 {
		c.specs = c.presets()
	} else {
		if len(specs) > MaxScreens {
			logger.Warn("collection: seed exceeds cap, truncating", "given", len(specs), "cap", MaxScreens)
			specs = specs[:MaxScreens]
		}
		next := make([]Spec, len(specs))
		copy(next, specs)
		c.specs = next
	}
	logger.Debug("collection: reseeded", "count", len(c.specs))
	c.notify()
}

// Reset restores the two preset screens with fresh ids.
func (c *Collection) Reset() {
	c.specs = c.presets()
	logger.Debug("collection: reset to presets")
	c.notify()
}
