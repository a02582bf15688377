package main

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
	"github.com/Ko-stant/house-layout-engine/internal/protocol"
	"github.com/Ko-stant/house-layout-engine/internal/ws"
)

// BroadcasterImpl implements Broadcaster using WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload interface{}) {
	data, err := encodeEnvelope(b.sequence, eventType, payload)
	if err != nil {
		log.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	b.hub.Broadcast(context.Background(), data)
}

func encodeEnvelope(sequence SequenceGenerator, eventType string, payload interface{}) ([]byte, error) {
	return json.Marshal(protocol.PatchEnvelope{
		Sequence: sequence.Next(),
		EventID:  0,
		Type:     eventType,
		Payload:  payload,
	})
}

// LoggerImpl implements Logger using standard log package
type LoggerImpl struct{}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}

func (sg *SequenceGeneratorImpl) Current() uint64 {
	return atomic.LoadUint64(&sg.counter)
}

// BroadcastSink implements layout.Sink by collecting each floor's primitives
// into one FloorGeometry event. A batch goes out when the next floor starts,
// before a ramp, and on Flush.
type BroadcastSink struct {
	broadcaster Broadcaster
	pending     *protocol.FloorGeometry
}

func NewBroadcastSink(broadcaster Broadcaster) *BroadcastSink {
	return &BroadcastSink{broadcaster: broadcaster}
}

func (s *BroadcastSink) batch(floor int) *protocol.FloorGeometry {
	if s.pending != nil && s.pending.Floor != floor {
		s.Flush()
	}
	if s.pending == nil {
		s.pending = &protocol.FloorGeometry{
			Floor:    floor,
			Floors:   []protocol.FloorEmitted{},
			Ceilings: []protocol.CeilingEmitted{},
			Walls:    []protocol.WallEmitted{},
		}
	}
	return s.pending
}

// Flush broadcasts the floor collected so far, if any.
func (s *BroadcastSink) Flush() {
	if s.pending == nil {
		return
	}
	s.broadcaster.BroadcastEvent(protocol.EventFloorGeometry, *s.pending)
	s.pending = nil
}

func (s *BroadcastSink) EmitFloor(floor int, pos geometry.Tile, height float64) {
	b := s.batch(floor)
	b.Floors = append(b.Floors, protocol.FloorEmitted{
		Floor:  floor,
		Tile:   protocol.TileAddressOf(pos),
		Height: height,
	})
}

func (s *BroadcastSink) EmitCeiling(floor int, pos geometry.Tile, height float64) {
	b := s.batch(floor)
	b.Ceilings = append(b.Ceilings, protocol.CeilingEmitted{
		Floor:  floor,
		Tile:   protocol.TileAddressOf(pos),
		Height: height,
	})
}

func (s *BroadcastSink) EmitWall(floor int, pos geometry.Tile, dir geometry.Direction, interior bool, height float64) {
	b := s.batch(floor)
	b.Walls = append(b.Walls, protocol.WallEmitted{
		Floor:     floor,
		Tile:      protocol.TileAddressOf(pos),
		Direction: dir.String(),
		Interior:  interior,
		Height:    height,
	})
}

func (s *BroadcastSink) EmitStairRamp(ramp layout.Ramp) {
	s.Flush()
	s.broadcaster.BroadcastEvent(protocol.EventStairRampEmitted, protocol.RampFrom(ramp))
}
