// Package live pushes order lifecycle events to WebSocket clients so the
// customer tracking view updates without polling.
package live

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// OrderEvent is broadcast whenever an order changes state.
type OrderEvent struct {
	OrderID          string    `json:"orderId"`
	Status           string    `json:"status"`
	RemainingMinutes int       `json:"remainingMinutes"`
	Timestamp        time.Time `json:"timestamp"`
}

// Hub tracks connected clients and fans events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to every connected client. Clients whose send
// buffer is full have the message dropped rather than blocking the
// broadcaster.
func (h *Hub) Broadcast(event OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling order event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Println("WebSocket buffer full, dropping message")
		}
	}
}
