package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/coder/websocket"

	"github.com/Ko-stant/house-layout-engine/internal/layout"
	"github.com/Ko-stant/house-layout-engine/internal/protocol"
	"github.com/Ko-stant/house-layout-engine/internal/web/views"
	"github.com/Ko-stant/house-layout-engine/internal/ws"
)

// Handlers serves the preview routes on top of a LayoutEngine
type Handlers struct {
	engine      LayoutEngine
	broadcaster Broadcaster
	logger      Logger
	connections *ConnectionManager
	sequence    SequenceGenerator
}

func NewHandlers(engine LayoutEngine, broadcaster Broadcaster, logger Logger, connections *ConnectionManager, sequence SequenceGenerator) *Handlers {
	return &Handlers{
		engine:      engine,
		broadcaster: broadcaster,
		logger:      logger,
		connections: connections,
		sequence:    sequence,
	}
}

// HandleRequestRegenerate builds a new building and announces it. The
// geometry itself has already been streamed by the engine's sink.
func (h *Handlers) HandleRequestRegenerate(req protocol.RequestRegenerate) (*layout.Building, error) {
	building, err := h.engine.Regenerate(req)
	if err != nil {
		h.logger.Printf("Regenerate failed: %v", err)
		return nil, err
	}

	for _, w := range building.Warnings {
		h.broadcaster.BroadcastEvent(protocol.EventGenerationWarning, protocol.WarningFrom(w))
	}
	h.broadcaster.BroadcastEvent(protocol.EventBuildingGenerated, buildingGenerated(building))
	h.connections.ClampFloors(len(building.Floors))
	return building, nil
}

// HandleRequestSelectFloor checks the floor against the current building
// and records it for conn.
func (h *Handlers) HandleRequestSelectFloor(conn *websocket.Conn, req protocol.RequestSelectFloor) (protocol.FloorSelected, error) {
	building := h.engine.Current()
	if building == nil {
		return protocol.FloorSelected{}, &RequestError{Code: "no_building", Message: "no building generated yet"}
	}
	if req.Floor < 0 || req.Floor >= len(building.Floors) {
		return protocol.FloorSelected{}, &RequestError{
			Code:    "invalid_floor",
			Message: fmt.Sprintf("floor %d outside 0..%d", req.Floor, len(building.Floors)-1),
		}
	}
	if err := h.connections.SetFloor(conn, req.Floor); err != nil {
		h.logger.Printf("Select floor on untracked connection: %v", err)
	}
	return protocol.FloorSelected{Floor: req.Floor}, nil
}

// HandleWebSocketMessage dispatches one intent. The returned envelope, if
// any, is the reply meant for the sending connection only.
func (h *Handlers) HandleWebSocketMessage(conn *websocket.Conn, data []byte) (*protocol.PatchEnvelope, error) {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	switch env.Type {
	case protocol.IntentRegenerate:
		var req protocol.RequestRegenerate
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return nil, err
		}
		_, err := h.HandleRequestRegenerate(req)
		return nil, err

	case protocol.IntentSelectFloor:
		var req protocol.RequestSelectFloor
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return nil, err
		}
		selected, err := h.HandleRequestSelectFloor(conn, req)
		if err != nil {
			return nil, err
		}
		return &protocol.PatchEnvelope{Sequence: h.sequence.Next(), Type: protocol.EventFloorSelected, Payload: selected}, nil

	default:
		h.logger.Printf("Unknown message type: %s", env.Type)
		return nil, nil
	}
}

func buildingGenerated(b *layout.Building) protocol.BuildingGenerated {
	return protocol.BuildingGenerated{
		Seed:     b.Seed,
		Floors:   len(b.Floors),
		Rooms:    b.RoomCount(),
		Warnings: len(b.Warnings),
	}
}

// ServeIndex renders the floor plan page. The floor comes from ?floor=.
func (h *Handlers) ServeIndex(w http.ResponseWriter, r *http.Request) {
	building := h.engine.Current()
	if building == nil {
		http.Error(w, "no building generated yet", http.StatusServiceUnavailable)
		return
	}

	floor := 0
	if raw := r.URL.Query().Get("floor"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n >= len(building.Floors) {
			http.Error(w, "invalid floor "+strconv.Quote(raw), http.StatusBadRequest)
			return
		}
		floor = n
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.IndexPage(protocol.SnapshotFromBuilding(building), floor).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ServeBuilding returns the current building as a JSON snapshot.
func (h *Handlers) ServeBuilding(w http.ResponseWriter, r *http.Request) {
	building := h.engine.Current()
	if building == nil {
		http.Error(w, "no building generated yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, protocol.SnapshotFromBuilding(building))
}

// ServeRegenerate accepts a POSTed RequestRegenerate and answers with the
// new snapshot. An empty body regenerates with a fresh seed.
func (h *Handlers) ServeRegenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req protocol.RequestRegenerate
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	building, err := h.HandleRequestRegenerate(req)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"code": reqErr.Code, "message": reqErr.Message})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, protocol.SnapshotFromBuilding(building))
}

// ServeStream upgrades to a websocket, registers the viewer and answers its
// intents until the connection drops.
func (h *Handlers) ServeStream(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)
		viewerID := h.connections.AddConnection(conn)
		h.logger.Printf("viewer %s connected (%d open)", viewerID, h.connections.Count())

		defer func() {
			hub.Remove(conn)
			h.connections.RemoveConnection(conn)
			conn.Close(websocket.StatusNormalClosure, "")
			h.logger.Printf("viewer %s disconnected", viewerID)
		}()

		ctx := r.Context()
		if building := h.engine.Current(); building != nil {
			if hello, err := encodeEnvelope(h.sequence, protocol.EventBuildingGenerated, buildingGenerated(building)); err == nil {
				_ = hub.Send(ctx, conn, hello)
			}
		}

		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			reply, err := h.HandleWebSocketMessage(conn, data)
			if err != nil {
				h.logger.Printf("viewer %s: %v", viewerID, err)
				continue
			}
			if reply != nil {
				h.reply(ctx, hub, conn, reply)
			}
		}
	}
}

func (h *Handlers) reply(ctx context.Context, hub *ws.Hub, conn *websocket.Conn, env *protocol.PatchEnvelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Printf("failed to marshal %s: %v", env.Type, err)
		return
	}
	if err := hub.Send(ctx, conn, data); err != nil {
		h.logger.Printf("failed to send %s: %v", env.Type, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
