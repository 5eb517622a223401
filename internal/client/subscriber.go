package client

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"elimpostor/internal/model"

	"github.com/cenkalti/backoff/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Subscriber is a cancellable subscription to one session's change stream.
// Snapshots arrive on Updates in the order the server pushed them; the
// channel closes when the session ends or Close is called. Dropped
// connections are redialed with exponential backoff until then.
type Subscriber struct {
	updates chan model.SessionSnapshot
	cancel  context.CancelFunc
	done    chan struct{}
}

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Subscribe opens the change stream for a session code against the given
// backend base URL.
func Subscribe(ctx context.Context, baseURL, code string) *Subscriber {
	ctx, cancel := context.WithCancel(ctx)
	s := &Subscriber{
		updates: make(chan model.SessionSnapshot, 16),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go s.run(ctx, wsURL(baseURL, code))
	return s
}

// Updates yields session snapshots until unsubscribe or session end.
func (s *Subscriber) Updates() <-chan model.SessionSnapshot {
	return s.updates
}

// Close unsubscribes and releases the connection.
func (s *Subscriber) Close() {
	s.cancel()
	<-s.done
}

func (s *Subscriber) run(ctx context.Context, url string) {
	defer close(s.done)
	defer close(s.updates)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second

	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			wait := b.NextBackOff()
			log.Debug().Err(err).Dur("retryIn", wait).Msg("subscription dial failed")
			select {
			case <-time.After(wait):
				continue
			case <-ctx.Done():
				return
			}
		}

		b.Reset()
		closed := s.readLoop(ctx, conn)
		conn.Close()
		if closed || ctx.Err() != nil {
			return
		}
		// Connection dropped; redial.
	}
}

// readLoop pumps messages until the stream breaks. Returns true when the
// subscription is finished for good (session closed).
func (s *Subscriber) readLoop(ctx context.Context, conn *websocket.Conn) bool {
	// Unblock ReadMessage when the context is cancelled.
	connDone := make(chan struct{})
	defer close(connDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-connDone:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return ctx.Err() != nil
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Debug().Err(err).Msg("dropping malformed subscription message")
			continue
		}

		switch env.Type {
		case "session_update":
			var snap model.SessionSnapshot
			if err := json.Unmarshal(env.Payload, &snap); err != nil {
				log.Debug().Err(err).Msg("dropping malformed snapshot")
				continue
			}
			select {
			case s.updates <- snap:
			case <-ctx.Done():
				return true
			}
		case "session_closed":
			return true
		}
	}
}

func wsURL(baseURL, code string) string {
	url := baseURL
	switch {
	case strings.HasPrefix(url, "https://"):
		url = "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		url = "ws://" + strings.TrimPrefix(url, "http://")
	}
	return url + "/v1/ws/sessions/" + code
}
