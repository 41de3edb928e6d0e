package screen

import "math"

// Dimensions holds the physical size derived from a diagonal and an aspect
// ratio. All values are in inches (area in square inches).
type Dimensions struct {
	Width  float64
	Height float64
	Area   float64
}

// Calculate derives width, height, and area from a diagonal and an aspect
// ratio. With ratio R = aspectX/aspectY and diagonal D, the sides satisfy
// D² = w² + h² and w = R·h, so h = D / sqrt(R²+1) and w = R·h.
//
// The function is total: non-positive or NaN arguments yield zero
// dimensions rather than an error. Rejecting such inputs before display is
// the validation pipeline's job, not this function's. No rounding happens
// here either; display precision belongs to the presentation layer.
func Calculate(diagonal, aspectX, aspectY float64) Dimensions {
	if !positive(diagonal) || !positive(aspectX) || !positive(aspectY) {
		return Dimensions{}
	}

	ratio := aspectX / aspectY
	height := diagonal / math.Sqrt(ratio*ratio+1)
	width := ratio * height

	return Dimensions{
		Width:  width,
		Height: height,
		Area:   width * height,
	}
}

// positive reports whether v is a real number greater than zero.
func positive(v float64) bool {
	return !math.IsNaN(v) && v > 0
}
