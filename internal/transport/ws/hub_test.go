package ws

import (
	"encoding/json"
	"testing"
	"time"

	"elimpostor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper: receive one raw message with a timeout so tests never hang
func recvMessage(t *testing.T, ch <-chan []byte, within time.Duration) []byte {
	t.Helper()
	select {
	case data, ok := <-ch:
		if !ok {
			t.Fatalf("send channel closed unexpectedly")
		}
		return data
	case <-time.After(within):
		t.Fatalf("timed out waiting for message")
		return nil // unreachable
	}
}

func recvClosed(t *testing.T, ch <-chan []byte, within time.Duration) {
	t.Helper()
	deadline := time.After(within)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return // closed, as expected
			}
			// drain pending messages first
		case <-deadline:
			t.Fatalf("channel not closed within %v", within)
		}
	}
}

func newTestConn(code string) *Connection {
	return &Connection{Code: code, Send: make(chan []byte, 8)}
}

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	a := newTestConn("AB12C")
	b := newTestConn("AB12C")
	other := newTestConn("ZZ99Z")
	hub.Register(a)
	hub.Register(b)
	hub.Register(other)

	snap := &model.SessionSnapshot{
		Session:     model.Session{Code: "AB12C", RoundNumber: 1},
		PlayerCount: 3,
	}
	hub.BroadcastSnapshot("AB12C", snap)

	for _, conn := range []*Connection{a, b} {
		data := recvMessage(t, conn.Send, time.Second)

		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, MsgSessionUpdate, msg.Type)

		var got model.SessionSnapshot
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, 1, got.Session.RoundNumber)
		assert.Equal(t, 3, got.PlayerCount)
	}

	// The other session's subscriber hears nothing.
	select {
	case data := <-other.Send:
		t.Fatalf("unexpected message for other session: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	conn := newTestConn("AB12C")
	hub.Register(conn)
	hub.Unregister(conn)

	recvClosed(t, conn.Send, time.Second)
	assert.Equal(t, 0, hub.Subscribers("AB12C"))
}

func TestHub_DisconnectSessionClosesAll(t *testing.T) {
	hub := NewHub()
	a := newTestConn("AB12C")
	b := newTestConn("AB12C")
	hub.Register(a)
	hub.Register(b)

	hub.DisconnectSession("AB12C")

	// Each subscriber gets the closed notice, then its channel closes.
	for _, conn := range []*Connection{a, b} {
		data := recvMessage(t, conn.Send, time.Second)
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, MsgSessionClosed, msg.Type)
		recvClosed(t, conn.Send, time.Second)
	}

	assert.Equal(t, 0, hub.Subscribers("AB12C"))
}
