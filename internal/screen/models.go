package screen

import (
	"github.com/rs/xid"
)

// MaxScreens is the hard cap on collection size. The presentation layer
// reads it to disable the add control when the collection is full.
const MaxScreens = 6

// Default field values for a newly added screen.
const (
	DefaultDiagonal = 24.0
	DefaultAspectX  = 16.0
	DefaultAspectY  = 9.0
)

// Spec is a single editable screen specification. The ID is assigned once
// at creation and stays stable across edits and removals of other entries;
// it is never reused for a different logical screen.
type Spec struct {
	ID       string  `json:"id"`
	Diagonal float64 `json:"diagonal"` // inches, corner to corner
	AspectX  float64 `json:"aspect_x"`
	AspectY  float64 `json:"aspect_y"`
	Color    string  `json:"color"`
}

// NewSpec creates a screen spec with a generated ID.
func NewSpec(diagonal, aspectX, aspectY float64, color string) *Spec {
	return &Spec{
		ID:       xid.New().String(),
		Diagonal: diagonal,
		AspectX:  aspectX,
		AspectY:  aspectY,
		Color:    color,
	}
}

// NewDefaultSpec creates a spec with the stock 24" 16:9 values and a color
// cycled from the entry's creation ordinal.
func NewDefaultSpec(ordinal int) *Spec {
	return NewSpec(DefaultDiagonal, DefaultAspectX, DefaultAspectY, ColorForIndex(ordinal))
}

// Derived is a spec augmented with its computed physical dimensions.
// Derived values are recomputed wholesale on every successful validation
// pass and never mutated incrementally.
type Derived struct {
	Spec
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Area   float64 `json:"area"`
}

// Patch names the spec fields an update replaces. Nil fields are left
// unchanged.
type Patch struct {
	Diagonal *float64
	AspectX  *float64
	AspectY  *float64
	Color    *string
}
