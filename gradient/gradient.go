// Package gradient expands ordered color stops into a precomputed color
// sequence (the spectrum) and maps fractional positions and 2D grid
// coordinates onto it.
//
// A Gradient is immutable after construction: the spectrum is computed
// once, never mutated, and safe to sample from concurrent readers
// without coordination.
package gradient

import (
	"fmt"
	"math"
)

// Gradient samples colors from a precomputed spectrum.
type Gradient struct {
	spectrum []RGB
}

// New builds a gradient from ordered color stops and per-segment step
// counts. steps holds one entry per transition between consecutive
// stops; when loop is set, the stop list is closed with a copy of its
// first entry, adding one transition back to the start.
//
// When len(steps) disagrees with the transition count, the shorter of
// the two decides: trailing transitions or trailing step entries are
// silently dropped. Use NewStrict to reject the mismatch instead.
//
// A single stop yields a constant spectrum of sum(steps) copies.
func New(stops []RGB, steps []int, loop bool) (*Gradient, error) {
	return build(stops, steps, loop, false)
}

// NewStrict is New, except construction fails with ErrStepMismatch
// unless len(steps) equals the transition count exactly.
func NewStrict(stops []RGB, steps []int, loop bool) (*Gradient, error) {
	return build(stops, steps, loop, true)
}

func build(stops []RGB, steps []int, loop, strict bool) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("no stops: %w", ErrNoStops)
	}
	if len(steps) == 0 {
		// Guarantees the spectrum is never empty
		return nil, fmt.Errorf("no steps: %w", ErrStepCount)
	}
	for i, n := range steps {
		if n < 1 {
			return nil, fmt.Errorf("steps[%d] = %d: %w", i, n, ErrStepCount)
		}
	}

	if len(stops) == 1 {
		total := 0
		for _, n := range steps {
			total += n
		}
		spectrum := make([]RGB, total)
		for i := range spectrum {
			spectrum[i] = stops[0]
		}
		return &Gradient{spectrum: spectrum}, nil
	}

	if loop {
		closed := make([]RGB, 0, len(stops)+1)
		closed = append(closed, stops...)
		stops = append(closed, stops[0])
	}

	segments := len(stops) - 1
	if strict && len(steps) != segments {
		return nil, fmt.Errorf("%d steps for %d transitions: %w", len(steps), segments, ErrStepMismatch)
	}
	if segments > len(steps) {
		segments = len(steps)
	}

	var spectrum []RGB
	for i := 0; i < segments; i++ {
		a, b := stops[i], stops[i+1]
		n := steps[i]
		// Endpoint-inclusive: the color at a segment boundary appears
		// twice in the spectrum, once per adjacent segment
		for s := 0; s <= n; s++ {
			spectrum = append(spectrum, RGB{
				R: lerpChannel(a.R, b.R, s, n),
				G: lerpChannel(a.G, b.G, s, n),
				B: lerpChannel(a.B, b.B, s, n),
			})
		}
	}
	return &Gradient{spectrum: spectrum}, nil
}

// Len returns the spectrum length. Always >= 1 for a constructed gradient.
func (g *Gradient) Len() int {
	return len(g.spectrum)
}

// Spectrum returns a copy of the precomputed color sequence.
func (g *Gradient) Spectrum() []RGB {
	out := make([]RGB, len(g.spectrum))
	copy(out, g.spectrum)
	return out
}

// ColorAt returns the spectrum color at fraction: 0 selects the first
// color, 1 the last. A NaN fraction resolves to the last color rather
// than an error; zero-sized grid dimensions divide by zero in
// CoordinateMap and land here.
func (g *Gradient) ColorAt(fraction float64) (RGB, error) {
	if math.IsNaN(fraction) {
		return g.spectrum[len(g.spectrum)-1], nil
	}
	if fraction < 0 || fraction > 1 {
		return RGB{}, fmt.Errorf("fraction %v: %w", fraction, ErrFractionRange)
	}
	// fraction 1.0 floors to exactly len-1, no endpoint ambiguity
	idx := int(math.Floor(fraction * float64(len(g.spectrum)-1)))
	return g.spectrum[idx], nil
}
