package screen

import (
	"errors"
	"fmt"
)

// Collection operation errors. All are recoverable and user-facing; the
// operation that returns one leaves the collection unchanged.
var (
	// ErrCollectionFull is returned by Add when the collection already
	// holds MaxScreens entries.
	ErrCollectionFull = fmt.Errorf("cannot add more than %d screens", MaxScreens)

	// ErrLastScreen is returned by Remove when only one entry remains.
	// The collection always keeps at least one screen.
	ErrLastScreen = errors.New("cannot remove the last screen")

	// ErrNotFound is returned when no entry matches the given id.
	ErrNotFound = errors.New("screen not found")
)

// FieldError describes a single invalid field on one entry. The pipeline
// aggregates these into its Invalid state; per-field display is the
// presentation layer's concern.
type FieldError struct {
	ScreenID string
	Field    string
	Reason   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("screen %s: %s %s", e.ScreenID, e.Field, e.Reason)
}
