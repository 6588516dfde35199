package ws

import (
	"encoding/json"
	"log"
)

// Event is one gallery change pushed to connected browsers, so open
// gallery views update without polling.
type Event struct {
	Type   string `json:"type"` // created, updated, deleted, shared
	ID     string `json:"id"`
	Title  string `json:"title"`
	Shared bool   `json:"shared"`

	// OwnerID scopes delivery; it is not sent to clients.
	OwnerID int64 `json:"-"`
}

type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Gallery events queued for fan-out.
	events chan Event

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		events:     make(chan Event, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Notify queues an event for broadcast. Safe to call from any request
// goroutine; drops the event if the hub can't keep up rather than
// stalling the HTTP handler.
func (h *Hub) Notify(ev Event) {
	select {
	case h.events <- ev:
	default:
		log.Printf("ws: dropping %s event for %s", ev.Type, ev.ID)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case ev := <-h.events:
			msgBytes, err := json.Marshal(ev)
			if err != nil {
				log.Printf("ws: marshal event: %v", err)
				continue
			}
			for client := range h.clients {
				// Events about private drawings only reach the owner's
				// connections; shared ones reach everyone, same
				// visibility rule as the gallery listing.
				if !ev.Shared && client.userID != ev.OwnerID {
					continue
				}
				select {
				case client.send <- msgBytes:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}
