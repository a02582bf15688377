// Command floorplan shows generated buildings in the terminal, one floor at
// a time.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
)

var roomColors = []tcell.Color{
	tcell.ColorNavy, tcell.ColorTeal, tcell.ColorOlive, tcell.ColorPurple,
	tcell.ColorMaroon, tcell.ColorGreen, tcell.ColorDarkCyan, tcell.ColorSaddleBrown,
}

type viewer struct {
	screen    tcell.Screen
	generator *layout.Generator
	cfg       layout.Config
	footprint *geometry.TileSet
	building  *layout.Building
	floor     int
	bell      *bell
	status    string
}

func (v *viewer) regenerate(seed int64) error {
	cfg := v.cfg
	cfg.Seed = seed

	var b *layout.Building
	var err error
	if v.footprint != nil {
		b, err = v.generator.GenerateOnFootprint(cfg, *v.footprint, nil)
	} else {
		b, err = v.generator.Generate(cfg, nil)
	}
	if err != nil {
		return err
	}
	v.building = b
	v.floor = min(v.floor, len(b.Floors)-1)
	if len(b.Warnings) > 0 {
		v.bell.ring()
	}
	return nil
}

func (v *viewer) draw() {
	v.screen.Clear()
	b := v.building
	header := fmt.Sprintf("seed %d  floor %d/%d  rooms %d  [n]ext [p]rev [r]egenerate [q]uit",
		b.Seed, v.floor, len(b.Floors)-1, len(b.Floors[v.floor].Rooms))
	drawText(v.screen, 0, 0, header, tcell.StyleDefault.Bold(true))

	p := rasterize(b, v.floor)
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			c := p.at(col, row)
			v.screen.SetContent(col, row+2, c.ch, nil, cellStyle(c))
		}
	}

	line := p.rows + 3
	for _, w := range b.Warnings {
		drawText(v.screen, 0, line, w.String(), tcell.StyleDefault.Foreground(tcell.ColorRed))
		line++
	}
	if v.status != "" {
		drawText(v.screen, 0, line, v.status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	v.screen.Show()
}

func cellStyle(c cell) tcell.Style {
	switch c.kind {
	case cellRoom:
		return tcell.StyleDefault.Background(roomColors[c.room%len(roomColors)])
	case cellShaft:
		return tcell.StyleDefault.Background(roomColors[c.room%len(roomColors)]).Foreground(tcell.ColorWhite).Bold(true)
	case cellDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case cellWall, cellCorner:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	return tcell.StyleDefault
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// handleKey applies one key press and reports whether the viewer should keep
// running. r is only read for tcell.KeyRune.
func (v *viewer) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		v.step(1)
	case tcell.KeyLeft:
		v.step(-1)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'n':
			v.step(1)
		case 'p':
			v.step(-1)
		case 'r':
			if err := v.regenerate(0); err != nil {
				v.status = err.Error()
			} else {
				v.status = ""
			}
		}
	}
	return true
}

func (v *viewer) step(delta int) {
	n := len(v.building.Floors)
	v.floor = (v.floor + delta + n) % n
}

func loadConfig(path, preset string, seed int64) (layout.Config, error) {
	var cfg layout.Config
	var err error
	if path != "" {
		cfg, err = layout.LoadConfigFromFile(path)
	} else {
		cfg, err = layout.Preset(preset)
	}
	if err != nil {
		return cfg, err
	}
	cfg.Seed = seed
	return cfg, nil
}

// loadFootprint reads path, or returns the built-in L-shape for "dev".
func loadFootprint(path string) (*geometry.TileSet, error) {
	switch path {
	case "":
		return nil, nil
	case "dev":
		fp := geometry.DevFootprint()
		return &fp, nil
	}
	def, err := geometry.LoadFootprintFromFile(path)
	if err != nil {
		return nil, err
	}
	tiles, err := def.TileSet()
	if err != nil {
		return nil, err
	}
	return &tiles, nil
}

func main() {
	seed := flag.Int64("seed", 0, "generation seed, 0 for random")
	preset := flag.String("preset", "default", "configuration preset")
	configPath := flag.String("config", "", "JSON config file, overrides -preset")
	footprintPath := flag.String("footprint", "", `footprint JSON file, or "dev" for the built-in outline`)
	withBell := flag.Bool("bell", false, "ring when a building has warnings")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *preset, *seed)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	footprint, err := loadFootprint(*footprintPath)
	if err != nil {
		log.Fatalf("Failed to load footprint: %v", err)
	}

	v := &viewer{generator: layout.NewGenerator(nil), cfg: cfg, footprint: footprint}
	if *withBell {
		if v.bell, err = newBell(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	if err := v.regenerate(cfg.Seed); err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	v.screen = screen
	defer screen.Fini()

	v.draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !v.handleKey(ev.Key(), ev.Rune()) {
				return
			}
			v.draw()
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		case nil:
			return
		}
	}
}
