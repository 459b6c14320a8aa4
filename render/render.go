// Package render paints gradient colors onto tcell screens.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgrad/gradient"
)

// Color converts an RGB to a tcell color. The gradient core leaves
// out-of-range channels unclamped; the terminal boundary pins them to
// 0..255.
func Color(c gradient.RGB) tcell.Color {
	return tcell.NewRGBColor(clamp(c.R), clamp(c.G), clamp(c.B))
}

func clamp(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Fill paints a w x h region with origin (x, y) from the gradient
// projected in the given direction. Each cell becomes a space with the
// sampled background color. Zero or negative extents paint nothing.
func Fill(s tcell.Screen, x, y, w, h int, g *gradient.Gradient, dir gradient.Direction) {
	if w <= 0 || h <= 0 {
		return
	}
	for p, c := range g.CoordinateMap(h-1, w-1, dir) {
		style := tcell.StyleDefault.Background(Color(c))
		s.SetContent(x+p.Col, y+p.Row, ' ', nil, style)
	}
}
