package gradient

import "errors"

// Construction and sampling failures. All are permanent for the given
// arguments; there are no transient failure modes to retry.
var (
	// ErrNoStops - construction with an empty stop list
	ErrNoStops = errors.New("gradient requires at least one color stop")

	// ErrStepCount - a step entry below 1, or no step entries at all
	ErrStepCount = errors.New("step counts must be positive")

	// ErrStepMismatch - strict construction with len(steps) != segment count
	ErrStepMismatch = errors.New("step count does not match stop transitions")

	// ErrFractionRange - sampling fraction outside [0, 1] and not NaN
	ErrFractionRange = errors.New("fraction outside [0, 1]")
)
