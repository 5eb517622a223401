package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"elimpostor/internal/service"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles WebSocket subscriptions to session changes.
type Handler struct {
	hub        *Hub
	sessionSvc *service.SessionService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, sessionSvc *service.SessionService) *Handler {
	return &Handler{
		hub:        hub,
		sessionSvc: sessionSvc,
	}
}

// Subscribe handles GET /v1/ws/sessions/{code}. On connect the client gets
// the current snapshot immediately, then one message per change until it
// hangs up or the session ends.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	snap, err := h.sessionSvc.GetSnapshot(r.Context(), code)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	conn := &Connection{
		Code: code,
		Send: make(chan []byte, 256),
		Hub:  h.hub,
	}
	h.hub.Register(conn)

	// Seed the new subscriber so a reconnecting client catches up without
	// waiting for the next mutation.
	if payload, err := json.Marshal(snap); err == nil {
		envelope, _ := json.Marshal(&Message{Type: MsgSessionUpdate, Payload: payload})
		select {
		case conn.Send <- envelope:
		default:
		}
	}

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debug().Err(err).Str("code", conn.Code).Msg("websocket read error")
			}
			break
		}
		// Subscriptions are one-way; incoming frames are ignored.
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
