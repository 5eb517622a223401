package ws

import (
	"encoding/json"
	"sync"

	"elimpostor/internal/model"

	"github.com/rs/zerolog/log"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSessionUpdate MessageType = "session_update"
	MsgSessionClosed MessageType = "session_closed"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans session snapshots out to every connection subscribed to a
// session code. It implements service.Broadcaster.
type Hub struct {
	// code -> set of connections
	conns map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *broadcastMessage
}

// Connection represents one subscribed client.
type Connection struct {
	Code string
	Send chan []byte
	Hub  *Hub
}

type broadcastMessage struct {
	Code    string
	Close   bool
	Message *Message
}

// NewHub creates a hub and starts its loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *broadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.Code] == nil {
				h.conns[conn.Code] = make(map[*Connection]struct{})
			}
			h.conns[conn.Code][conn] = struct{}{}
			h.mu.Unlock()
			log.Debug().Str("code", conn.Code).Msg("subscriber connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.conns[conn.Code]; ok {
				if _, ok := set[conn]; ok {
					delete(set, conn)
					close(conn.Send)
					if len(set) == 0 {
						delete(h.conns, conn.Code)
					}
				}
			}
			h.mu.Unlock()
			log.Debug().Str("code", conn.Code).Msg("subscriber disconnected")

		case msg := <-h.broadcast:
			h.mu.Lock()
			set := h.conns[msg.Code]
			if msg.Message != nil {
				data, _ := json.Marshal(msg.Message)
				for conn := range set {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			}
			if msg.Close {
				for conn := range set {
					close(conn.Send)
				}
				delete(h.conns, msg.Code)
			}
			h.mu.Unlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastSnapshot pushes the latest session state to every subscriber
// (implements service.Broadcaster).
func (h *Hub) BroadcastSnapshot(code string, snap *model.SessionSnapshot) {
	data, _ := json.Marshal(snap)
	h.broadcast <- &broadcastMessage{
		Code: code,
		Message: &Message{
			Type:    MsgSessionUpdate,
			Payload: data,
		},
	}
}

// DisconnectSession notifies subscribers the session is gone and drops them
// (implements service.Broadcaster).
func (h *Hub) DisconnectSession(code string) {
	h.broadcast <- &broadcastMessage{
		Code:  code,
		Close: true,
		Message: &Message{
			Type:    MsgSessionClosed,
			Payload: json.RawMessage(`{}`),
		},
	}
}

// Subscribers reports the number of live connections for a code.
func (h *Hub) Subscribers(code string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[code])
}
