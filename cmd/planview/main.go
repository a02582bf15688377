// Command planview draws generated buildings in a window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Ko-stant/house-layout-engine/internal/layout"
)

const (
	tileSize = 16
	margin   = 24
	hudLines = 3
)

type Game struct {
	generator *layout.Generator
	cfg       layout.Config
	building  *layout.Building
	floor     int
	scene     scene
	lastErr   error
}

func NewGame(cfg layout.Config) (*Game, error) {
	g := &Game{generator: layout.NewGenerator(layout.NewStdLogger()), cfg: cfg}
	if err := g.regenerate(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) regenerate(seed int64) error {
	cfg := g.cfg
	cfg.Seed = seed
	b, err := g.generator.Generate(cfg, nil)
	if err != nil {
		return err
	}
	g.building = b
	g.floor = min(g.floor, len(b.Floors)-1)
	g.rebuild()
	return nil
}

func (g *Game) selectFloor(delta int) {
	n := len(g.building.Floors)
	g.floor = (g.floor + delta + n) % n
	g.rebuild()
}

func (g *Game) rebuild() {
	g.scene = buildScene(g.building, g.floor, tileSize, margin)
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.selectFloor(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.selectFloor(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.lastErr = g.regenerate(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x30, 0x30, 0x38, 0xff})

	offsetY := float32(hudLines * 16)
	for _, r := range g.scene.Tiles {
		vector.DrawFilledRect(screen, r.X, r.Y+offsetY, r.W, r.H, r.Color, false)
	}
	for _, s := range g.scene.Walls {
		vector.StrokeLine(screen, s.X0, s.Y0+offsetY, s.X1, s.Y1+offsetY, 2, s.Color, true)
	}
	for _, s := range g.scene.Doors {
		vector.StrokeLine(screen, s.X0, s.Y0+offsetY, s.X1, s.Y1+offsetY, 3, s.Color, true)
	}

	b := g.building
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("seed %d  floor %d/%d  rooms %d  doors %d  warnings %d",
		b.Seed, g.floor, len(b.Floors)-1, len(b.Floors[g.floor].Rooms), b.Floors[g.floor].Doors.Len(), len(b.Warnings)), 8, 4)
	ebitenutil.DebugPrintAt(screen, "arrows: floor  R: regenerate  Esc: quit", 8, 20)
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, g.lastErr.Error(), 8, 36)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(g.scene.Width, 360), g.scene.Height + hudLines*16
}

func main() {
	seed := flag.Int64("seed", 0, "generation seed, 0 for random")
	preset := flag.String("preset", "default", "configuration preset")
	configPath := flag.String("config", "", "JSON config file, overrides -preset")
	flag.Parse()

	var cfg layout.Config
	var err error
	if *configPath != "" {
		cfg, err = layout.LoadConfigFromFile(*configPath)
	} else {
		cfg, err = layout.Preset(*preset)
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Seed = *seed

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("House layout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
