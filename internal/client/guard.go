package client

import (
	"context"

	"elimpostor/internal/model"

	"github.com/rs/zerolog/log"
)

// SessionReader is the one authoritative read the guard is allowed per
// navigation. *API satisfies it.
type SessionReader interface {
	GetSnapshot(ctx context.Context, code string) (*model.SessionSnapshot, error)
}

// Guard reconciles the locally cached identity against the authoritative
// session record before every navigation, deciding which screen actually
// renders. Store failures fail open: navigation never hard-fails, the user
// just lands on a safe default.
type Guard struct {
	cache  IdentityCache
	reader SessionReader
}

// NewGuard creates a restore guard.
func NewGuard(cache IdentityCache, reader SessionReader) *Guard {
	return &Guard{cache: cache, reader: reader}
}

// Resolve maps the requested route to the one that should render.
func (g *Guard) Resolve(ctx context.Context, requested Route) Route {
	// Legacy host URL aliases to the shareable lobby URL.
	if requested.Name == RouteHost {
		requested = Lobby(requested.Code)
	}

	id, err := g.cache.Load()
	if err != nil && err != ErrNoIdentity {
		log.Warn().Err(err).Msg("identity cache unreadable, treating as empty")
		id = nil
	}

	switch requested.Name {
	case RouteLobby:
		return g.resolveLobby(requested, id)
	case RouteHome:
		return g.resolveHome(ctx, requested, id)
	case RoutePlayer:
		return g.resolvePlayer(ctx, requested, id)
	case RouteGame:
		if id == nil {
			g.clearStale()
			return Home()
		}
		return requested
	default:
		return requested
	}
}

// resolveLobby handles the shareable /lobby/{code} URL: hosts stay, players
// of the same session go to their own view, strangers go to the join flow.
func (g *Guard) resolveLobby(requested Route, id *Identity) Route {
	if id != nil && id.Code == requested.Code {
		if id.IsHost {
			return requested
		}
		return PlayerLobby(requested.Code)
	}
	return HomeWithJoin(requested.Code)
}

// resolveHome restores a saved session when landing on the root view, unless
// the navigation is itself a join-by-link (the prefill wins then).
func (g *Guard) resolveHome(ctx context.Context, requested Route, id *Identity) Route {
	if id == nil || requested.JoinPrefill != "" {
		return requested
	}

	if g.roundInProgress(ctx, id.Code) {
		return Game(id.Code)
	}
	if id.IsHost {
		return Lobby(id.Code)
	}
	return PlayerLobby(id.Code)
}

// resolvePlayer sends a player whose round started mid-navigation straight
// into the game.
func (g *Guard) resolvePlayer(ctx context.Context, requested Route, id *Identity) Route {
	if id == nil {
		g.clearStale()
		if requested.Code != "" {
			return HomeWithJoin(requested.Code)
		}
		return Home()
	}

	if g.roundInProgress(ctx, id.Code) {
		return Game(id.Code)
	}
	return requested
}

// roundInProgress performs the single authoritative read. Any failure means
// "no session in progress".
func (g *Guard) roundInProgress(ctx context.Context, code string) bool {
	snap, err := g.reader.GetSnapshot(ctx, code)
	if err != nil {
		log.Debug().Err(err).Str("code", code).Msg("restore check failed, failing open")
		return false
	}
	return snap.Session.RoundNumber > 0
}

func (g *Guard) clearStale() {
	if err := g.cache.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear stale identity")
	}
}
