package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Ko-stant/house-layout-engine/internal/protocol"
)

// TileSize is the edge length of one tile in SVG pixels.
const TileSize = 16

var roomPalette = []string{
	"#f4d6a0", "#a8d8b9", "#a9c8e8", "#e8b4c8", "#d8c8f0",
	"#f0e68c", "#b8e0d2", "#f6bfa0", "#c9d7a2", "#d3c0a8",
}

// RoomColor returns the fill used for room id.
func RoomColor(id int) string {
	if id < 0 {
		id = -id
	}
	return roomPalette[id%len(roomPalette)]
}

// IndexPage is the preview page for one floor of s.
func IndexPage(s protocol.Snapshot, floor int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head><meta charset="utf-8"><title>House layout</title>`+
			`<style>body{font-family:sans-serif;margin:1.5rem}nav a{margin-right:.5rem}.warn{color:#a33}</style></head><body>`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h1>Seed %d</h1><p>strategy %s, %d floor(s)</p>`,
			s.Seed, templ.EscapeString(s.Strategy), len(s.Floors)); err != nil {
			return err
		}
		if err := floorNav(s, floor).Render(ctx, w); err != nil {
			return err
		}
		if err := FloorPlan(s, floor).Render(ctx, w); err != nil {
			return err
		}
		if err := warningList(s.Warnings).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, streamScript+`</body></html>`)
		return err
	})
}

func floorNav(s protocol.Snapshot, current int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav>`); err != nil {
			return err
		}
		for _, f := range s.Floors {
			label := "Floor " + strconv.Itoa(f.Index)
			if f.Index == current {
				label = "<strong>" + label + "</strong>"
			}
			if _, err := fmt.Fprintf(w, `<a href="/?floor=%d">%s</a>`, f.Index, label); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<button id="regen">Regenerate</button></nav>`)
		return err
	})
}

// FloorPlan draws one floor as inline SVG: room tiles filled per room,
// doors as gaps marked in white, the stair shaft hatched.
func FloorPlan(s protocol.Snapshot, floor int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if floor < 0 || floor >= len(s.Floors) {
			_, err := fmt.Fprintf(w, `<p class="warn">no floor %d</p>`, floor)
			return err
		}
		f := s.Floors[floor]
		width, height := s.Width*TileSize, s.Length*TileSize

		// SVG y grows downwards, tiles grow northwards.
		px := func(x int) int { return (x - s.Origin.X) * TileSize }
		py := func(y int) int { return (s.Origin.Y + s.Length - 1 - y) * TileSize }

		if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" data-floor="%d">`,
			width, height, width, height, f.Index); err != nil {
			return err
		}
		for _, r := range f.Rooms {
			if _, err := fmt.Fprintf(w, `<g class="room" data-room="%d" fill="%s">`, r.ID, RoomColor(r.ID)); err != nil {
				return err
			}
			for _, t := range r.Tiles {
				if _, err := fmt.Fprintf(w, `<rect x="%d" y="%d" width="%d" height="%d"/>`, px(t.X), py(t.Y), TileSize, TileSize); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</g>`); err != nil {
				return err
			}
		}

		if s.Stairwell != nil {
			if _, err := io.WriteString(w, `<g class="shaft" fill="#555" fill-opacity="0.45">`); err != nil {
				return err
			}
			for _, t := range s.Stairwell.Run {
				if _, err := fmt.Fprintf(w, `<rect x="%d" y="%d" width="%d" height="%d"/>`, px(t.X), py(t.Y), TileSize, TileSize); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</g>`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<g class="doors" stroke="#fff" stroke-width="3">`); err != nil {
			return err
		}
		for _, d := range f.Doors {
			x1, y1, x2, y2 := doorSegment(d, px, py)
			if _, err := fmt.Fprintf(w, `<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x1, y1, x2, y2); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</g></svg>`)
		return err
	})
}

// doorSegment returns the pixel line of a door edge. A vertical edge at
// (X,Y) is the east side of tile (X,Y); a horizontal one its north side.
func doorSegment(d protocol.DoorLite, px, py func(int) int) (int, int, int, int) {
	left, top := px(d.X), py(d.Y)
	if d.Orientation == "vertical" {
		x := left + TileSize
		return x, top + 3, x, top + TileSize - 3
	}
	return left + 3, top, left + TileSize - 3, top
}

func warningList(warnings []protocol.GenerationWarning) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(warnings) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<ul class="warn">`); err != nil {
			return err
		}
		for _, wn := range warnings {
			if _, err := fmt.Fprintf(w, `<li>%s: %s</li>`, templ.EscapeString(wn.Kind), templ.EscapeString(wn.Message)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

const streamScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(proto + location.host + "/stream");
  sock.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "BuildingGenerated") { location.reload(); }
  };
  document.getElementById("regen").onclick = function () {
    sock.send(JSON.stringify({type: "RequestRegenerate", payload: {seed: 0}}));
  };
})();
</script>`
