package ws

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Event is the wire format pushed to admin live-feed sessions.
type Event struct {
	Event string      `json:"event"` // newAttendance / newLeaveRequest / leaveDecision
	Data  interface{} `json:"data"`
}

// Hub fans accepted events out to every connected admin session. Delivery is
// best-effort: a full hub or a dead connection drops the event for that
// client and nothing is retried.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan Event, 64),
	}
}

// Run owns the client set; all access goes through the channels.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			log.Printf("Admin connected to live feed (%d active)", len(h.clients))
		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			log.Printf("Admin disconnected from live feed (%d active)", len(h.clients))
		case event := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					delete(h.clients, conn)
					conn.Close()
				}
			}
		}
	}
}

// Broadcast never blocks the caller.
func (h *Hub) Broadcast(event string, payload interface{}) {
	select {
	case h.broadcast <- Event{Event: event, Data: payload}:
	default:
		log.Println("Live feed queue full, dropping event")
	}
}

// UpgradeRequired gates the websocket route to actual upgrade requests.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler registers the connection and parks in a read loop until the
// client goes away.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.register <- conn
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
