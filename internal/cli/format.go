package cli

import (
	"fmt"
	"strconv"
	"strings"

	"screencmp/internal/screen"
)

// ParseAspect parses an aspect ratio given as "16:9" or "16x9". Both
// components must be positive numbers.
func ParseAspect(s string) (float64, float64, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "x"
	}

	parts := strings.SplitN(strings.TrimSpace(s), sep, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("aspect ratio must look like 16:9, got %q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid aspect width %q: %w", parts[0], err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid aspect height %q: %w", parts[1], err)
	}

	if x <= 0 || y <= 0 {
		return 0, 0, fmt.Errorf("aspect ratio components must be positive, got %s", s)
	}
	return x, y, nil
}

// FormatDimensions renders one derivation as an aligned block, rounded to
// two decimals for display.
func FormatDimensions(diagonal, aspectX, aspectY float64, dims screen.Dimensions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%g\" %g:%g\n", diagonal, aspectX, aspectY)
	fmt.Fprintf(&b, "  width:  %8.2f in\n", dims.Width)
	fmt.Fprintf(&b, "  height: %8.2f in\n", dims.Height)
	fmt.Fprintf(&b, "  area:   %8.2f in²\n", dims.Area)
	return b.String()
}
