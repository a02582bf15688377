package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeTimeout bounds a single write so one slow client cannot stall a
// broadcast.
const writeTimeout = 3 * time.Second

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast writes message to every client in parallel, without holding the
// registry lock during writes. Clients whose write fails are closed and
// dropped.
func (h *Hub) Broadcast(ctx context.Context, message []byte) {
	h.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.Unlock()

	failed := make([]bool, len(clients))
	var wg sync.WaitGroup
	for i, conn := range clients {
		i, conn := i, conn
		wg.Add(1)
		go func() {
			defer wg.Done()
			failed[i] = write(ctx, conn, message) != nil
		}()
	}
	wg.Wait()

	for i, conn := range clients {
		if !failed[i] {
			continue
		}
		_ = conn.Close(websocket.StatusNormalClosure, "")
		h.Remove(conn)
	}
}

// Send writes message to a single client.
func (h *Hub) Send(ctx context.Context, conn *websocket.Conn, message []byte) error {
	return write(ctx, conn, message)
}

func write(ctx context.Context, conn *websocket.Conn, message []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, message)
}
