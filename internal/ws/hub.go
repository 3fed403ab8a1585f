package ws

import (
	"encoding/json"
	"sync"
)

// sendBuffer is how many events may queue for a slow dashboard before the
// hub drops it.
const sendBuffer = 256

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub maintains the set of connected dashboards and broadcasts events to them
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan Event

	// Called from Run with the new dashboard count whenever it changes
	onPresence func(count int)
	// Called from a client's read loop when a dashboard acknowledges alerts
	onAck func()

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
	}
}

// OnPresence sets the callback told how many dashboards are connected.
// Must be called before Run.
func (h *Hub) OnPresence(fn func(count int)) {
	h.onPresence = fn
}

// OnAcknowledge sets the callback run when any dashboard sends
// notifications.ack. It may be called concurrently from several clients.
// Must be called before Run.
func (h *Hub) OnAcknowledge(fn func()) {
	h.onAck = fn
}

// Run starts the hub's main loop
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.presence(count)

		case client := <-h.unregister:
			h.mu.Lock()
			_, exists := h.clients[client]
			if exists {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			if exists {
				h.presence(count)
			}

		case event := <-h.broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				continue
			}

			h.mu.Lock()
			dropped := false
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and unregister
					close(client.send)
					delete(h.clients, client)
					dropped = true
				}
			}
			count := len(h.clients)
			h.mu.Unlock()
			if dropped {
				h.presence(count)
			}
		}
	}
}

// Broadcast sends an event to every connected dashboard
func (h *Hub) Broadcast(event Event) {
	h.broadcast <- event
}

// ClientCount returns the number of connected dashboards
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) acknowledge() {
	if h.onAck != nil {
		h.onAck()
	}
}

func (h *Hub) presence(count int) {
	if h.onPresence != nil {
		h.onPresence(count)
	}
}
