// internal/websocket/hub.go
package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of connected dashboard clients and fans out reports
// and alerts to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			log.Printf("websocket client registered: %s", client.Conn.RemoteAddr())
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Printf("websocket client unregistered: %s", client.Conn.RemoteAddr())
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow or gone; drop it rather than blocking the hub.
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// RegisterClient hands a new connection to the hub loop.
func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

// BroadcastReport pushes a completed diagnostic report to every client.
func (h *Hub) BroadcastReport(report interface{}) {
	h.send("report", report)
}

// BroadcastAlert pushes one alert to every client.
func (h *Hub) BroadcastAlert(alert interface{}) {
	h.send("alert", alert)
}

func (h *Hub) send(kind string, payload interface{}) {
	message, err := json.Marshal(map[string]interface{}{"type": kind, "payload": payload})
	if err != nil {
		log.Printf("websocket marshal error: %v", err)
		return
	}
	h.broadcast <- message
}
