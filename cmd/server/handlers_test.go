package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
	"github.com/Ko-stant/house-layout-engine/internal/protocol"
)

// Mock implementations for testing handlers
type MockBroadcaster struct {
	events []BroadcastEvent
}

type BroadcastEvent struct {
	EventType string
	Payload   any
}

func (m *MockBroadcaster) BroadcastEvent(eventType string, payload any) {
	m.events = append(m.events, BroadcastEvent{
		EventType: eventType,
		Payload:   payload,
	})
}

func (m *MockBroadcaster) GetEvents() []BroadcastEvent {
	return m.events
}

type MockLayoutEngine struct {
	building *layout.Building
	err      error
	requests []protocol.RequestRegenerate
}

func (m *MockLayoutEngine) Regenerate(req protocol.RequestRegenerate) (*layout.Building, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.building, nil
}

func (m *MockLayoutEngine) Current() *layout.Building {
	return m.building
}

func sampleBuilding(t *testing.T) *layout.Building {
	t.Helper()
	cfg := layout.DefaultConfig()
	cfg.Seed = 99
	b, err := layout.NewGenerator(nil).Generate(cfg, nil)
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	b.Warnings = append(b.Warnings, layout.Warning{Kind: layout.IsolatedRoom, Floor: 1, Room: 2, Message: "test"})
	return b
}

func newTestHandlers(engine LayoutEngine, broadcaster Broadcaster) (*Handlers, *MockLogger) {
	logger := &MockLogger{}
	return NewHandlers(engine, broadcaster, logger, NewConnectionManager(), NewSequenceGenerator()), logger
}

func TestHandlers_HandleRequestRegenerate_Success(t *testing.T) {
	// Arrange
	broadcaster := &MockBroadcaster{}
	engine := &MockLayoutEngine{building: sampleBuilding(t)}
	handlers, _ := newTestHandlers(engine, broadcaster)

	// Act
	_, err := handlers.HandleRequestRegenerate(protocol.RequestRegenerate{Seed: 99})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	events := broadcaster.GetEvents()
	warnings := len(engine.building.Warnings)
	if len(events) != warnings+1 {
		t.Fatalf("Expected %d broadcast events, got: %d", warnings+1, len(events))
	}
	for i := 0; i < warnings; i++ {
		if events[i].EventType != protocol.EventGenerationWarning {
			t.Errorf("Expected event %d to be %s, got: %s", i, protocol.EventGenerationWarning, events[i].EventType)
		}
	}

	last := events[len(events)-1]
	if last.EventType != protocol.EventBuildingGenerated {
		t.Fatalf("Expected last event to be %s, got: %s", protocol.EventBuildingGenerated, last.EventType)
	}
	summary := last.Payload.(protocol.BuildingGenerated)
	if summary.Seed != 99 || summary.Floors != 2 {
		t.Errorf("Unexpected summary %+v", summary)
	}
}

func TestHandlers_HandleRequestRegenerate_EngineError(t *testing.T) {
	// Arrange
	broadcaster := &MockBroadcaster{}
	engine := &MockLayoutEngine{err: errors.New("boom")}
	handlers, logger := newTestHandlers(engine, broadcaster)

	// Act
	_, err := handlers.HandleRequestRegenerate(protocol.RequestRegenerate{})

	// Assert
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if len(broadcaster.GetEvents()) != 0 {
		t.Errorf("Expected no broadcast events, got: %d", len(broadcaster.GetEvents()))
	}
	if len(logger.messages) == 0 {
		t.Error("Expected error to be logged")
	}
}

func TestHandlers_HandleRequestSelectFloor(t *testing.T) {
	// Arrange
	engine := &MockLayoutEngine{building: sampleBuilding(t)}
	handlers, _ := newTestHandlers(engine, &MockBroadcaster{})

	// Act
	selected, err := handlers.HandleRequestSelectFloor(nil, protocol.RequestSelectFloor{Floor: 1})
	_, outOfRange := handlers.HandleRequestSelectFloor(nil, protocol.RequestSelectFloor{Floor: 5})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if selected.Floor != 1 {
		t.Errorf("Expected floor 1, got %d", selected.Floor)
	}
	var reqErr *RequestError
	if !errors.As(outOfRange, &reqErr) || reqErr.Code != "invalid_floor" {
		t.Errorf("Expected invalid_floor error, got: %v", outOfRange)
	}
}

func TestHandlers_HandleWebSocketMessage(t *testing.T) {
	// Arrange
	broadcaster := &MockBroadcaster{}
	engine := &MockLayoutEngine{building: sampleBuilding(t)}
	handlers, logger := newTestHandlers(engine, broadcaster)

	// Act
	_, regenErr := handlers.HandleWebSocketMessage(nil, []byte(`{"type":"RequestRegenerate","payload":{"seed":5,"preset":"cottage"}}`))
	reply, selectErr := handlers.HandleWebSocketMessage(nil, []byte(`{"type":"RequestSelectFloor","payload":{"floor":0}}`))
	unknownReply, unknownErr := handlers.HandleWebSocketMessage(nil, []byte(`{"type":"RequestDance","payload":{}}`))
	_, badErr := handlers.HandleWebSocketMessage(nil, []byte(`not json`))

	// Assert
	if regenErr != nil || selectErr != nil || unknownErr != nil {
		t.Fatalf("Unexpected errors: %v, %v, %v", regenErr, selectErr, unknownErr)
	}
	if len(engine.requests) != 1 || engine.requests[0].Preset != "cottage" || engine.requests[0].Seed != 5 {
		t.Errorf("Unexpected regenerate requests %+v", engine.requests)
	}
	if reply == nil || reply.Type != protocol.EventFloorSelected {
		t.Fatalf("Expected a FloorSelected reply, got %+v", reply)
	}
	if unknownReply != nil {
		t.Error("Expected no reply to an unknown intent")
	}
	if badErr == nil {
		t.Error("Expected an error for malformed JSON")
	}
	found := false
	for _, m := range logger.messages {
		if strings.Contains(m, "Unknown message type") {
			found = true
		}
	}
	if !found {
		t.Error("Expected unknown intent to be logged")
	}
}

func TestHandlers_ServeIndex(t *testing.T) {
	// Arrange
	handlers, _ := newTestHandlers(&MockLayoutEngine{building: sampleBuilding(t)}, &MockBroadcaster{})

	// Act
	ok := httptest.NewRecorder()
	handlers.ServeIndex(ok, httptest.NewRequest(http.MethodGet, "/?floor=1", nil))
	bad := httptest.NewRecorder()
	handlers.ServeIndex(bad, httptest.NewRequest(http.MethodGet, "/?floor=9", nil))

	// Assert
	if ok.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", ok.Code)
	}
	if !strings.Contains(ok.Body.String(), `data-floor="1"`) {
		t.Error("Expected floor 1 to be rendered")
	}
	if bad.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a missing floor, got %d", bad.Code)
	}
}

func TestHandlers_ServeIndex_NoBuilding(t *testing.T) {
	handlers, _ := newTestHandlers(&MockLayoutEngine{}, &MockBroadcaster{})

	rec := httptest.NewRecorder()
	handlers.ServeIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", rec.Code)
	}
}

func TestHandlers_ServeBuilding(t *testing.T) {
	// Arrange
	building := sampleBuilding(t)
	handlers, _ := newTestHandlers(&MockLayoutEngine{building: building}, &MockBroadcaster{})

	// Act
	rec := httptest.NewRecorder()
	handlers.ServeBuilding(rec, httptest.NewRequest(http.MethodGet, "/api/building", nil))

	// Assert
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var snap protocol.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("Failed to decode snapshot: %v", err)
	}
	if snap.Seed != building.Seed || len(snap.Floors) != len(building.Floors) {
		t.Errorf("Unexpected snapshot seed=%d floors=%d", snap.Seed, len(snap.Floors))
	}
}

func TestHandlers_ServeRegenerate(t *testing.T) {
	// Arrange
	engine := &MockLayoutEngine{building: sampleBuilding(t)}
	handlers, _ := newTestHandlers(engine, &MockBroadcaster{})

	// Act
	get := httptest.NewRecorder()
	handlers.ServeRegenerate(get, httptest.NewRequest(http.MethodGet, "/regenerate", nil))
	post := httptest.NewRecorder()
	handlers.ServeRegenerate(post, httptest.NewRequest(http.MethodPost, "/regenerate", strings.NewReader(`{"seed":12}`)))
	garbage := httptest.NewRecorder()
	handlers.ServeRegenerate(garbage, httptest.NewRequest(http.MethodPost, "/regenerate", strings.NewReader(`{`)))

	// Assert
	if get.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET, got %d", get.Code)
	}
	if post.Code != http.StatusOK {
		t.Errorf("Expected 200 for POST, got %d", post.Code)
	}
	if len(engine.requests) != 1 || engine.requests[0].Seed != 12 {
		t.Errorf("Unexpected requests %+v", engine.requests)
	}
	if garbage.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a malformed body, got %d", garbage.Code)
	}
}

func TestHandlers_ServeRegenerate_RequestError(t *testing.T) {
	engine := &MockLayoutEngine{err: &RequestError{Code: "unknown_preset", Message: "nope"}}
	handlers, _ := newTestHandlers(engine, &MockBroadcaster{})

	rec := httptest.NewRecorder()
	handlers.ServeRegenerate(rec, httptest.NewRequest(http.MethodPost, "/regenerate", strings.NewReader(`{"preset":"castle"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown_preset") {
		t.Errorf("Expected error code in body, got %s", rec.Body.String())
	}
}

func TestBroadcastSink_BatchesPerFloor(t *testing.T) {
	// Arrange
	broadcaster := &MockBroadcaster{}
	sink := NewBroadcastSink(broadcaster)

	// Act
	sink.EmitFloor(0, geometry.Tile{X: 1, Y: 2}, 0)
	sink.EmitCeiling(0, geometry.Tile{X: 1, Y: 2}, 3)
	sink.EmitWall(0, geometry.Tile{X: 1, Y: 2}, geometry.East, true, 0)
	sink.EmitStairRamp(layout.Ramp{Floor: 0, Depth: 4})
	sink.EmitFloor(1, geometry.Tile{X: 1, Y: 2}, 3)
	sink.EmitFloor(2, geometry.Tile{X: 1, Y: 2}, 6)
	sink.Flush()
	sink.Flush()

	// Assert
	events := broadcaster.GetEvents()
	expected := []string{
		protocol.EventFloorGeometry,
		protocol.EventStairRampEmitted,
		protocol.EventFloorGeometry,
		protocol.EventFloorGeometry,
	}
	if len(events) != len(expected) {
		t.Fatalf("Expected %d events, got %d", len(expected), len(events))
	}
	for i, e := range expected {
		if events[i].EventType != e {
			t.Errorf("Expected event %d to be %s, got %s", i, e, events[i].EventType)
		}
	}
	ground := events[0].Payload.(protocol.FloorGeometry)
	if len(ground.Floors) != 1 || len(ground.Ceilings) != 1 || len(ground.Walls) != 1 {
		t.Fatalf("Unexpected ground floor batch %+v", ground)
	}
	if ground.Walls[0].Direction != "east" || !ground.Walls[0].Interior {
		t.Errorf("Unexpected wall payload %+v", ground.Walls[0])
	}
	if top := events[3].Payload.(protocol.FloorGeometry); top.Floor != 2 {
		t.Errorf("Expected last batch for floor 2, got %d", top.Floor)
	}
}

func TestGenerationMetrics_Track(t *testing.T) {
	metrics := NewGenerationMetrics()
	engine := NewInstrumentedLayoutEngine(&MockLayoutEngine{building: sampleBuilding(t)}, metrics)

	if _, err := engine.Regenerate(protocol.RequestRegenerate{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	metrics.TrackGeneration(nil, 0)

	if metrics.BuildingsGenerated != 1 || metrics.FailedRuns != 1 {
		t.Errorf("Unexpected counts generated=%d failed=%d", metrics.BuildingsGenerated, metrics.FailedRuns)
	}
	if metrics.RoomsGenerated == 0 {
		t.Error("Expected rooms to be counted")
	}
}

func TestConnectionManager_ClampFloors(t *testing.T) {
	cm := NewConnectionManager()
	if err := cm.SetFloor(nil, 2); err == nil {
		t.Error("Expected an error for an untracked connection")
	}
	cm.ClampFloors(1)
	if cm.Count() != 0 {
		t.Errorf("Expected no connections, got %d", cm.Count())
	}
}
