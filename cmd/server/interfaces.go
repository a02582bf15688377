package main

import (
	"github.com/Ko-stant/house-layout-engine/internal/layout"
	"github.com/Ko-stant/house-layout-engine/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload interface{})
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...interface{})
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// LayoutEngine owns the building currently on display
type LayoutEngine interface {
	Regenerate(req protocol.RequestRegenerate) (*layout.Building, error)
	Current() *layout.Building
}
