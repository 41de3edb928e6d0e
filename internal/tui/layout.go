package tui

// PaneDimensions holds calculated dimensions for all panes in the layout.
type PaneDimensions struct {
	// Left pane (editable spec list)
	ListWidth  int
	ListHeight int

	// Right column, stacked: results table over preview
	RightWidth    int
	ResultsHeight int
	PreviewHeight int

	// Bottom bar
	StatusHeight int // Fixed: 1 line
}

// CalculatePaneDimensions computes pane sizes for the terminal. The spec
// list takes 45% of the width; the right column splits 40/60 between the
// results table and the preview.
func CalculatePaneDimensions(termWidth, termHeight int) PaneDimensions {
	dims := PaneDimensions{
		StatusHeight: 1,
	}

	availableHeight := termHeight - dims.StatusHeight
	if availableHeight < 0 {
		availableHeight = 0
	}

	dims.ListHeight = availableHeight

	dims.ListWidth = int(float64(termWidth) * 0.45)
	// Remaining width goes to the right column (ensures sum = termWidth).
	dims.RightWidth = termWidth - dims.ListWidth

	dims.ResultsHeight = int(float64(availableHeight) * 0.40)
	dims.PreviewHeight = availableHeight - dims.ResultsHeight

	if dims.ListWidth < 0 {
		dims.ListWidth = 0
	}
	if dims.RightWidth < 0 {
		dims.RightWidth = 0
	}

	return dims
}
