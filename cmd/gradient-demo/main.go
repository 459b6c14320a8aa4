// Interactive gradient viewer. Paints the whole screen from a gradient
// and lets direction, palette and loop mode be cycled live.
//
// Keys: Tab cycles direction, p cycles palette, l toggles loop,
// Esc/q/Ctrl+C exits.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgrad/gradient"
	"github.com/lixenwraith/termgrad/render"
)

// Rainbow keyframes: deep red through orange, yellow, green, cyan, blue
// to purple/pink
var heatStops = []gradient.RGB{
	{R: 139, G: 0, B: 0},
	{R: 255, G: 69, B: 0},
	{R: 255, G: 215, B: 0},
	{R: 34, G: 139, B: 34},
	{R: 0, G: 206, B: 209},
	{R: 65, G: 105, B: 225},
	{R: 219, G: 112, B: 147},
}

var palettes = []struct {
	name  string
	stops []gradient.RGB
	steps []int
}{
	{"heat", heatStops, []int{24, 24, 24, 24, 24, 24, 24}},
	{"red-blue", []gradient.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}}, []int{64, 64}},
	{"ocean", []gradient.RGB{
		gradient.MustHex("#001533"),
		gradient.MustHex("#0a5e9c"),
		gradient.MustHex("#7fd4e8"),
	}, []int{48, 48, 48}},
	{"mono", []gradient.RGB{{R: 0, G: 200, B: 0}}, []int{64}},
}

var directions = []gradient.Direction{
	gradient.Vertical,
	gradient.Horizontal,
	gradient.Radial,
	gradient.Diagonal,
}

// State holds the interactive settings
type State struct {
	PaletteIdx int
	DirIdx     int
	Loop       bool
}

func (st State) gradient() (*gradient.Gradient, error) {
	p := palettes[st.PaletteIdx]
	return gradient.New(p.stops, p.steps, st.Loop)
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	state := State{}

	for {
		g, err := state.gradient()
		if err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "gradient: %v\n", err)
			os.Exit(1)
		}

		w, h := screen.Size()
		screen.Clear()
		// Bottom line reserved for status
		render.Fill(screen, 0, 0, w, h-1, g, directions[state.DirIdx])
		drawStatus(screen, h-1, state)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyTab:
				state.DirIdx = (state.DirIdx + 1) % len(directions)
			case ev.Rune() == 'p':
				state.PaletteIdx = (state.PaletteIdx + 1) % len(palettes)
			case ev.Rune() == 'l':
				state.Loop = !state.Loop
			}
		}
	}
}

func drawStatus(screen tcell.Screen, row int, state State) {
	loopLabel := "off"
	if state.Loop {
		loopLabel = "on"
	}
	text := fmt.Sprintf(" %s | %s | loop %s | Tab:dir p:palette l:loop q:quit",
		palettes[state.PaletteIdx].name, directions[state.DirIdx], loopLabel)

	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.NewRGBColor(26, 27, 38))
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		screen.SetContent(x, row, r, nil, style)
	}
}
