package mosaic

import (
	"fmt"
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// validateStops checks a gradient stop sequence: at least two stops, with
// strictly increasing offsets inside [0, 1]. Gradient constructors call
// this before accepting the stops, so sampling never has to re-check.
func validateStops(stops []ColorStop) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: need at least 2 color stops, got %d", ErrInvalidGradient, len(stops))
	}
	for i, stop := range stops {
		if stop.Offset < 0 || stop.Offset > 1 {
			return fmt.Errorf("%w: stop %d offset %v outside [0, 1]", ErrInvalidGradient, i, stop.Offset)
		}
		if i > 0 && stop.Offset <= stops[i-1].Offset {
			return fmt.Errorf("%w: stop offsets must be strictly increasing (%v after %v)",
				ErrInvalidGradient, stop.Offset, stops[i-1].Offset)
		}
	}
	return nil
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the interpolated color at a given offset.
// The stops must be validated (sorted, strictly increasing); the two
// bracketing stops are found by binary search and blended in linear sRGB.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})

	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]

	// Exact hits reproduce the stop color bit-for-bit, without a color
	// space round trip.
	if t == stop2.Offset {
		return stop2.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.LerpLinear(stop2.Color, localT)
}

func errZeroAxis(p Point) error {
	return fmt.Errorf("%w: gradient start and end coincide at (%g, %g)", ErrInvalidGradient, p.X, p.Y)
}

// copyStops copies the stop slice so later mutation of the caller's slice
// cannot affect a validated gradient.
func copyStops(stops []ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	return out
}
