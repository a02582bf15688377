package geometry

import (
	"encoding/json"
	"fmt"
	"os"
)

// RectDefinition is an axis-aligned block of tiles in a footprint file.
type RectDefinition struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Length int `json:"length"`
}

// FootprintDefinition is a hand-authored building outline
type FootprintDefinition struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Tiles []Tile           `json:"tiles"`
	Rects []RectDefinition `json:"rects"`
}

// LoadFootprintFromFile loads a footprint definition from a JSON file
func LoadFootprintFromFile(filepath string) (*FootprintDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read footprint file: %w", err)
	}

	var def FootprintDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse footprint JSON: %w", err)
	}

	return &def, nil
}

// TileSet unions the listed tiles and rectangles.
func (def *FootprintDefinition) TileSet() (TileSet, error) {
	out := NewTileSet(def.Tiles...)
	for i, r := range def.Rects {
		if r.Width <= 0 || r.Length <= 0 {
			return TileSet{}, fmt.Errorf("footprint %q rect %d: non-positive size %dx%d", def.ID, i, r.Width, r.Length)
		}
		out.AddAll(RectTiles(r.X, r.Y, r.Width, r.Length))
	}
	if out.Empty() {
		return TileSet{}, fmt.Errorf("footprint %q has no tiles", def.ID)
	}
	return out, nil
}
