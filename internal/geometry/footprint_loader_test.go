package geometry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFootprintFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fp.json")
	body := `{"id":"t","name":"test","tiles":[{"x":9,"y":9}],"rects":[{"x":0,"y":0,"width":3,"length":2}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	def, err := LoadFootprintFromFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	tiles, err := def.TileSet()
	if err != nil {
		t.Fatalf("tile set failed: %v", err)
	}
	if tiles.Len() != 7 {
		t.Errorf("expected 7 tiles, got %d", tiles.Len())
	}
}

func TestLoadFootprintFromFile_Errors(t *testing.T) {
	if _, err := LoadFootprintFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected an error for a missing file")
	}

	def := &FootprintDefinition{ID: "bad", Rects: []RectDefinition{{Width: 0, Length: 3}}}
	if _, err := def.TileSet(); err == nil {
		t.Errorf("expected an error for a zero-width rect")
	}
}
