package gradient

import "math"

// Direction selects how a 2D grid coordinate becomes a 1D spectrum
// fraction.
type Direction uint8

const (
	Vertical   Direction = iota // varies by row, constant across a row
	Horizontal                  // varies by column, constant down a column
	Radial                      // circular rings around the grid center
	Diagonal                    // slanted, row-weighted 2:1 over column
)

// String returns the direction name for display
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Radial:
		return "radial"
	case Diagonal:
		return "diagonal"
	}
	return "unknown"
}

// Point is a grid coordinate. Value identity makes it a usable map key.
type Point struct {
	Col, Row int
}

// CoordinateMap returns one color per grid cell for 0 <= col <= maxCol
// and 0 <= row <= maxRow, inclusive: (maxRow+1)*(maxCol+1) entries. The
// map is freshly allocated per call and owned by the caller. Negative
// extents produce an empty map.
func (g *Gradient) CoordinateMap(maxRow, maxCol int, dir Direction) map[Point]RGB {
	if maxRow < 0 || maxCol < 0 {
		return map[Point]RGB{}
	}
	m := make(map[Point]RGB, (maxRow+1)*(maxCol+1))
	for row := 0; row <= maxRow; row++ {
		for col := 0; col <= maxCol; col++ {
			// Formulas stay within [0,1] or NaN, so sampling cannot fail
			c, _ := g.ColorAt(cellFraction(col, row, maxRow, maxCol, dir))
			m[Point{Col: col, Row: row}] = c
		}
	}
	return m
}

func cellFraction(col, row, maxRow, maxCol int, dir Direction) float64 {
	switch dir {
	case Vertical:
		if maxRow == 0 {
			return 1.0
		}
		return float64(row) / float64(maxRow)
	case Horizontal:
		if maxCol == 0 {
			return 1.0
		}
		return float64(col) / float64(maxCol)
	case Radial:
		cx := float64(maxCol) / 2
		cy := float64(maxRow) / 2
		// A 1x1 grid has zero center-to-corner distance; 0/0 is NaN,
		// which ColorAt resolves to the spectrum end
		return math.Hypot(float64(col)-cx, float64(row)-cy) / math.Hypot(cx, cy)
	case Diagonal:
		// Denominator is 0 only on a 1x1 grid, NaN as above
		return float64(2*row+col) / float64(2*maxRow+maxCol)
	}
	return math.NaN()
}
