package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgrad/gradient"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func bgAt(t *testing.T, s tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestColorClamps(t *testing.T) {
	tests := []struct {
		name string
		in   gradient.RGB
		want tcell.Color
	}{
		{"In range", gradient.RGB{R: 10, G: 20, B: 30}, tcell.NewRGBColor(10, 20, 30)},
		{"Above range", gradient.RGB{R: 300, G: 0, B: 0}, tcell.NewRGBColor(255, 0, 0)},
		{"Below range", gradient.RGB{R: -50, G: 128, B: 0}, tcell.NewRGBColor(0, 128, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color(tt.in); got != tt.want {
				t.Errorf("Color(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFillVertical(t *testing.T) {
	g, err := gradient.New([]gradient.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}}, []int{4}, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := newSimScreen(t, 3, 3)
	Fill(s, 0, 0, 3, 3, g, gradient.Vertical)
	s.Show()

	wantRow := []tcell.Color{
		tcell.NewRGBColor(255, 0, 0),
		tcell.NewRGBColor(127, 0, 127),
		tcell.NewRGBColor(0, 0, 255),
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if bg := bgAt(t, s, x, y); bg != wantRow[y] {
				t.Errorf("Cell (%d,%d) bg = %v, want %v", x, y, bg, wantRow[y])
			}
		}
	}
}

func TestFillRespectsOrigin(t *testing.T) {
	g, err := gradient.New([]gradient.RGB{{R: 0, G: 255, B: 0}}, []int{1}, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := newSimScreen(t, 4, 4)
	Fill(s, 2, 1, 2, 2, g, gradient.Horizontal)
	s.Show()

	lime := tcell.NewRGBColor(0, 255, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 2 && y >= 1 && y <= 2
			bg := bgAt(t, s, x, y)
			if inside && bg != lime {
				t.Errorf("Cell (%d,%d) bg = %v, want %v", x, y, bg, lime)
			}
			if !inside && bg == lime {
				t.Errorf("Cell (%d,%d) painted outside the region", x, y)
			}
		}
	}
}

func TestFillZeroExtent(t *testing.T) {
	g, err := gradient.New([]gradient.RGB{{R: 255, G: 0, B: 0}}, []int{1}, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := newSimScreen(t, 2, 2)
	Fill(s, 0, 0, 0, 2, g, gradient.Vertical)
	Fill(s, 0, 0, 2, 0, g, gradient.Vertical)
	s.Show()

	red := tcell.NewRGBColor(255, 0, 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if bg := bgAt(t, s, x, y); bg == red {
				t.Errorf("Cell (%d,%d) painted with zero extent", x, y)
			}
		}
	}
}
