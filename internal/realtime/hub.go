// Package realtime pushes onboarding changes to every browser tab that has
// a restaurant's wizard open.
package realtime

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type envelope struct {
	restaurantID uint
	payload      []byte
}

// Hub groups clients per restaurant. Membership changes and fan-out all go
// through the Run loop.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[uint]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[uint]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 256),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is cancelled, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.restaurantID] == nil {
				h.rooms[c.restaurantID] = make(map[*Client]struct{})
			}
			h.rooms[c.restaurantID][c] = struct{}{}
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(c)
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[msg.restaurantID] {
				select {
				case c.send <- msg.payload:
				default:
					// slow reader, drop it
					h.removeLocked(c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues payload for every client watching restaurantID. It never
// blocks, a full queue drops the message.
func (h *Hub) Broadcast(restaurantID uint, payload []byte) {
	select {
	case h.broadcast <- envelope{restaurantID: restaurantID, payload: payload}:
	default:
		zap.L().Warn("realtime broadcast queue full, message dropped", zap.Uint("restaurant_id", restaurantID))
	}
}

// Clients reports how many connections watch restaurantID.
func (h *Hub) Clients(restaurantID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[restaurantID])
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) removeLocked(c *Client) {
	room, ok := h.rooms[c.restaurantID]
	if !ok {
		return
	}
	if _, ok = room[c]; !ok {
		return
	}
	delete(room, c)
	close(c.send)
	if len(room) == 0 {
		delete(h.rooms, c.restaurantID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range h.rooms {
		for c := range room {
			h.removeLocked(c)
		}
	}
}
