// Prints a gradient spectrum as colored blocks, one block per spectrum
// entry, for eyeballing palettes in a shell.
//
//	swatch -stops "#8b0000,#ff4500,#ffd700" -steps "16,16" -hex
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/termgrad/gradient"
)

var (
	stopsFlag  = flag.String("stops", "#8b0000,#ffd700", "comma-separated hex color stops")
	stepsFlag  = flag.String("steps", "32", "comma-separated per-segment step counts")
	loopFlag   = flag.Bool("loop", false, "close the gradient back to its first stop")
	strictFlag = flag.Bool("strict", false, "fail when step count does not match stop transitions")
	hexFlag    = flag.Bool("hex", false, "print one hex value per line instead of blocks")
	widthFlag  = flag.Int("width", 64, "blocks per output line")
)

func main() {
	flag.Parse()

	stops, err := parseStops(*stopsFlag)
	if err != nil {
		fatal(err)
	}
	steps, err := parseSteps(*stepsFlag)
	if err != nil {
		fatal(err)
	}

	build := gradient.New
	if *strictFlag {
		build = gradient.NewStrict
	}
	g, err := build(stops, steps, *loopFlag)
	if err != nil {
		fatal(err)
	}

	if *hexFlag {
		for _, c := range g.Spectrum() {
			fmt.Println(c.Hex())
		}
		return
	}
	printBlocks(g.Spectrum(), *widthFlag)
}

func parseStops(s string) ([]gradient.RGB, error) {
	var stops []gradient.RGB
	for _, part := range strings.Split(s, ",") {
		c, err := gradient.Hex(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		stops = append(stops, c)
	}
	return stops, nil
}

func parseSteps(s string) ([]int, error) {
	var steps []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse step %q: %w", part, err)
		}
		steps = append(steps, n)
	}
	return steps, nil
}

func printBlocks(spectrum []gradient.RGB, width int) {
	if width < 1 {
		width = 1
	}
	var line strings.Builder
	for i, c := range spectrum {
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Render(" ")
		line.WriteString(block)
		if (i+1)%width == 0 || i == len(spectrum)-1 {
			fmt.Println(line.String())
			line.Reset()
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
