package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"elimpostor/internal/model"
)

// Errors surfaced by the API client.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrServer          = errors.New("server error")
)

const defaultTimeout = 5 * time.Second

// API is the HTTP client for the session backend. Every call is bounded by
// the configured timeout; a timed-out call is a failure, not a retry.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI creates an API client. timeout <= 0 falls back to the default.
func NewAPI(baseURL string, timeout time.Duration) *API {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type sessionPlayerResponse struct {
	Session *model.Session `json:"session"`
	Player  *model.Player  `json:"player"`
}

// CreateSession creates a session and returns it with the host player.
func (a *API) CreateSession(ctx context.Context, hostName string, impostorCount int) (*model.Session, *model.Player, error) {
	body := map[string]interface{}{"hostName": hostName, "impostorCount": impostorCount}
	var resp sessionPlayerResponse
	if err := a.do(ctx, http.MethodPost, "/v1/sessions", body, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Session, resp.Player, nil
}

// JoinSession joins an existing session by code.
func (a *API) JoinSession(ctx context.Context, code, playerName string) (*model.Player, *model.Session, error) {
	body := map[string]interface{}{"playerName": playerName}
	var resp sessionPlayerResponse
	if err := a.do(ctx, http.MethodPost, "/v1/sessions/"+code+"/join", body, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Player, resp.Session, nil
}

// GetSnapshot reads the authoritative session state.
func (a *API) GetSnapshot(ctx context.Context, code string) (*model.SessionSnapshot, error) {
	var snap model.SessionSnapshot
	if err := a.do(ctx, http.MethodGet, "/v1/sessions/"+code, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// StartRound asks the backend to start round 1.
func (a *API) StartRound(ctx context.Context, code, playerID string) error {
	return a.do(ctx, http.MethodPost, "/v1/sessions/"+code+"/start", hostAction(playerID), nil)
}

// StartNextRound advances to the next round.
func (a *API) StartNextRound(ctx context.Context, code, playerID string) error {
	return a.do(ctx, http.MethodPost, "/v1/sessions/"+code+"/next-round", hostAction(playerID), nil)
}

// RevealCard fetches this player's card for the current round.
func (a *API) RevealCard(ctx context.Context, code, playerID string) (*model.RevealResult, error) {
	var result model.RevealResult
	path := fmt.Sprintf("/v1/sessions/%s/reveal?playerId=%s", code, playerID)
	if err := a.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LeaveSession tells the backend this player is gone.
func (a *API) LeaveSession(ctx context.Context, code, playerID string) error {
	return a.do(ctx, http.MethodPost, "/v1/sessions/"+code+"/leave", hostAction(playerID), nil)
}

// EndSession tears down the session (host only).
func (a *API) EndSession(ctx context.Context, code, playerID string) error {
	return a.do(ctx, http.MethodDelete, "/v1/sessions/"+code, hostAction(playerID), nil)
}

func hostAction(playerID string) map[string]interface{} {
	return map[string]interface{}{"playerId": playerID}
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrSessionNotFound
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%w: %s", ErrServer, apiErr.Error)
		}
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
