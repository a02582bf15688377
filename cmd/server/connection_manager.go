package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/coder/websocket"
)

// ConnectionInfo tracks a WebSocket connection and the floor its viewer is looking at
type ConnectionInfo struct {
	Conn     *websocket.Conn
	ViewerID string
	Floor    int
}

// ConnectionManager manages WebSocket connections and viewer state
type ConnectionManager struct {
	connections map[*websocket.Conn]*ConnectionInfo
	mutex       sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[*websocket.Conn]*ConnectionInfo),
	}
}

// AddConnection registers a connection viewing floor 0 and returns its viewer ID
func (cm *ConnectionManager) AddConnection(conn *websocket.Conn) string {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	viewerID := generateViewerID()
	cm.connections[conn] = &ConnectionInfo{Conn: conn, ViewerID: viewerID}
	return viewerID
}

// RemoveConnection removes a connection and returns its viewer ID
func (cm *ConnectionManager) RemoveConnection(conn *websocket.Conn) string {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	info, exists := cm.connections[conn]
	if !exists {
		return ""
	}
	delete(cm.connections, conn)
	return info.ViewerID
}

func (cm *ConnectionManager) SetFloor(conn *websocket.Conn, floor int) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	info, exists := cm.connections[conn]
	if !exists {
		return fmt.Errorf("connection not registered")
	}
	info.Floor = floor
	return nil
}

// Floor returns the floor selected on conn, 0 for unknown connections
func (cm *ConnectionManager) Floor(conn *websocket.Conn) int {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if info, exists := cm.connections[conn]; exists {
		return info.Floor
	}
	return 0
}

func (cm *ConnectionManager) Count() int {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()
	return len(cm.connections)
}

// ClampFloors moves viewers past the last floor of a new building back onto it
func (cm *ConnectionManager) ClampFloors(floors int) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	for _, info := range cm.connections {
		if info.Floor >= floors {
			info.Floor = max(floors-1, 0)
		}
	}
}

func generateViewerID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "viewer-unknown"
	}
	return "viewer-" + hex.EncodeToString(bytes)
}
