package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"elimpostor/internal/service"

	"github.com/gorilla/mux"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	HostName      string `json:"hostName"`
	ImpostorCount int    `json:"impostorCount"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, host, err := h.sessionSvc.CreateSession(r.Context(), req.HostName, req.ImpostorCount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session": session,
		"player":  host,
	})
}

// Get handles GET /v1/sessions/{code}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	snap, err := h.sessionSvc.GetSnapshot(r.Context(), code)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// JoinRequest is the request body for joining a session
type JoinRequest struct {
	PlayerName string `json:"playerName"`
}

// Join handles POST /v1/sessions/{code}/join
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, session, err := h.sessionSvc.JoinSession(r.Context(), code, req.PlayerName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
		"player":  player,
	})
}

// HostActionRequest carries the caller identity for host-only operations.
type HostActionRequest struct {
	PlayerID string `json:"playerId"`
}

// StartRound handles POST /v1/sessions/{code}/start
func (h *SessionHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	h.advanceRound(w, r, h.sessionSvc.StartRound)
}

// NextRound handles POST /v1/sessions/{code}/next-round
func (h *SessionHandler) NextRound(w http.ResponseWriter, r *http.Request) {
	h.advanceRound(w, r, h.sessionSvc.StartNextRound)
}

func (h *SessionHandler) advanceRound(w http.ResponseWriter, r *http.Request, start func(ctx context.Context, code, callerID string) error) {
	code := mux.Vars(r)["code"]

	var req HostActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := start(r.Context(), code, req.PlayerID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "round started"})
}

// Reveal handles GET /v1/sessions/{code}/reveal?playerId=...
func (h *SessionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "playerId is required")
		return
	}

	result, err := h.sessionSvc.RevealCard(r.Context(), code, playerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Leave handles POST /v1/sessions/{code}/leave
func (h *SessionHandler) Leave(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req HostActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.sessionSvc.LeaveSession(r.Context(), code, req.PlayerID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

// RenameRequest is the request body for renaming a player
type RenameRequest struct {
	Name string `json:"name"`
}

// Rename handles PUT /v1/sessions/{code}/players/{playerId}
func (h *SessionHandler) Rename(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.sessionSvc.RenamePlayer(r.Context(), vars["code"], vars["playerId"], req.Name); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "renamed"})
}

// End handles DELETE /v1/sessions/{code}
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req HostActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.sessionSvc.EndSession(r.Context(), code, req.PlayerID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ended"})
}

// writeServiceError maps the service failure taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInsufficientPlayers):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRoundConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
