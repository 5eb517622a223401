package service

import "errors"

// Failure taxonomy surfaced to transport. Handlers map these onto HTTP
// statuses; nothing below the service layer returns them.
var (
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrSessionNotFound     = errors.New("session not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrInsufficientPlayers = errors.New("not enough players to start a round")
	ErrNotAuthorized       = errors.New("only the host can do that")
	ErrValidation          = errors.New("invalid request")
	// ErrRoundConflict means a concurrent round start won the conditional
	// write. The caller already got the new state pushed over its
	// subscription, so a retry is rarely useful.
	ErrRoundConflict = errors.New("round already advanced by another writer")
)
