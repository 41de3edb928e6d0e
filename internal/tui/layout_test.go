package tui

import (
	"testing"
)

func TestCalculatePaneDimensionsSumsToTerminalWidth(t *testing.T) {
	testCases := []struct {
		name   string
		width  int
		height int
	}{
		{"minimum", MinTerminalWidth, MinTerminalHeight},
		{"typical", 120, 40},
		{"wide", 200, 30},
		{"odd width", 121, 33},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dims := CalculatePaneDimensions(tc.width, tc.height)

			if dims.ListWidth+dims.RightWidth != tc.width {
				t.Errorf("Expected pane widths to sum to %d, got %d",
					tc.width, dims.ListWidth+dims.RightWidth)
			}
			if dims.ResultsHeight+dims.PreviewHeight != tc.height-dims.StatusHeight {
				t.Errorf("Expected right column heights to fill %d, got %d",
					tc.height-dims.StatusHeight, dims.ResultsHeight+dims.PreviewHeight)
			}
			if dims.StatusHeight != 1 {
				t.Errorf("Expected status height 1, got %d", dims.StatusHeight)
			}
			if dims.ListHeight != tc.height-1 {
				t.Errorf("Expected list height %d, got %d", tc.height-1, dims.ListHeight)
			}
		})
	}
}

func TestCalculatePaneDimensionsTinyTerminal(t *testing.T) {
	dims := CalculatePaneDimensions(0, 0)

	if dims.ListWidth < 0 || dims.RightWidth < 0 {
		t.Error("Expected non-negative widths for zero-size terminal")
	}
	if dims.ListHeight < 0 || dims.ResultsHeight < 0 || dims.PreviewHeight < 0 {
		t.Error("Expected non-negative heights for zero-size terminal")
	}
}
