package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"elimpostor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_GetSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions/AB12C", r.URL.Path)
		json.NewEncoder(w).Encode(&model.SessionSnapshot{
			Session:     model.Session{Code: "AB12C", RoundNumber: 2},
			PlayerCount: 4,
		})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, 0)
	snap, err := api.GetSnapshot(context.Background(), "AB12C")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Session.RoundNumber)
	assert.Equal(t, 4, snap.PlayerCount)
}

func TestAPI_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, 0)
	_, err := api.GetSnapshot(context.Background(), "GONE1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAPI_ServerErrorIncludesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "not enough players to start a round"})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, 0)
	err := api.StartRound(context.Background(), "AB12C", "player_x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "not enough players")
}

func TestAPI_CreateAndJoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/sessions":
			var req map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Franco", req["hostName"])
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"session": model.Session{Code: "AB12C", HostID: "player_h"},
				"player":  model.Player{ID: "player_h", Name: "Franco"},
			})
		case "/v1/sessions/AB12C/join":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"session": model.Session{Code: "AB12C"},
				"player":  model.Player{ID: "player_p", Name: "Caro"},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, 0)

	session, host, err := api.CreateSession(context.Background(), "Franco", 1)
	require.NoError(t, err)
	assert.Equal(t, "AB12C", session.Code)
	assert.Equal(t, session.HostID, host.ID)

	player, joined, err := api.JoinSession(context.Background(), "AB12C", "Caro")
	require.NoError(t, err)
	assert.Equal(t, "AB12C", joined.Code)
	assert.Equal(t, "Caro", player.Name)
}
