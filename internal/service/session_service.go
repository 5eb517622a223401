package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"elimpostor/internal/cache"
	"elimpostor/internal/game"
	"elimpostor/internal/model"
	"elimpostor/internal/repository"

	"github.com/rs/zerolog/log"
)

// Options are the tunable game rules.
type Options struct {
	MinPlayers         int
	CodeLength         int
	RemovePlayerOnExit bool
}

// DefaultOptions matches the original game settings.
func DefaultOptions() Options {
	return Options{
		MinPlayers:         2,
		CodeLength:         5,
		RemovePlayerOnExit: false,
	}
}

// SessionService owns the session lifecycle: create, join, round starts,
// reveals and teardown. All round-state transitions funnel through here.
type SessionService struct {
	sessionRepo  repository.SessionRepo
	playerRepo   repository.PlayerRepo
	sessionCache cache.SessionCache
	opts         Options
	broadcaster  Broadcaster
}

// NewSessionService creates a new session service.
func NewSessionService(
	sessionRepo repository.SessionRepo,
	playerRepo repository.PlayerRepo,
	sessionCache cache.SessionCache,
	opts Options,
) *SessionService {
	if opts.MinPlayers <= 0 {
		opts.MinPlayers = 2
	}
	if opts.CodeLength <= 0 {
		opts.CodeLength = 5
	}
	return &SessionService{
		sessionRepo:  sessionRepo,
		playerRepo:   playerRepo,
		sessionCache: sessionCache,
		opts:         opts,
	}
}

// SetBroadcaster sets the broadcaster for realtime snapshot pushes.
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// CreateSession writes a new session in the lobby state plus the host's
// player row, and returns both.
func (s *SessionService) CreateSession(ctx context.Context, hostName string, impostorCount int) (*model.Session, *model.Player, error) {
	if impostorCount < 1 {
		return nil, nil, fmt.Errorf("%w: impostor count must be at least 1", ErrValidation)
	}

	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		hostName = game.FunnyName()
	}

	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	session := &model.Session{
		Code:          code,
		HostID:        game.NewPlayerID(),
		ImpostorCount: impostorCount,
		RoundNumber:   0,
		Impostors:     []string{},
		CreatedAt:     now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	host := &model.Player{
		ID:        session.HostID,
		Name:      hostName,
		SessionID: session.ID,
		JoinedAt:  now,
	}
	if err := s.playerRepo.Create(ctx, host); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.publishSnapshot(ctx, session, []model.Player{*host})

	log.Info().Str("code", code).Int("impostorCount", impostorCount).Msg("session created")
	return session, host, nil
}

// JoinSession adds a player to the session with the given code. The roster
// grows by independent inserts only, so concurrent joins never conflict.
func (s *SessionService) JoinSession(ctx context.Context, code, playerName string) (*model.Player, *model.Session, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil, fmt.Errorf("%w: session code is required", ErrValidation)
	}

	session, err := s.lookupSession(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		playerName = game.FunnyName()
	}

	player := &model.Player{
		ID:        game.NewPlayerID(),
		Name:      playerName,
		SessionID: session.ID,
		JoinedAt:  time.Now(),
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.refreshSnapshot(ctx, session)

	log.Info().Str("code", code).Str("playerId", player.ID).Msg("player joined")
	return player, session, nil
}

// StartRound begins round 1. Host only; requires the minimum roster size.
func (s *SessionService) StartRound(ctx context.Context, code, callerID string) error {
	return s.advanceRound(ctx, code, callerID, false)
}

// StartNextRound advances an in-progress game to the next round.
func (s *SessionService) StartNextRound(ctx context.Context, code, callerID string) error {
	return s.advanceRound(ctx, code, callerID, true)
}

func (s *SessionService) advanceRound(ctx context.Context, code, callerID string, requireActive bool) error {
	session, err := s.lookupSession(ctx, code)
	if err != nil {
		return err
	}
	if session.HostID != callerID {
		return ErrNotAuthorized
	}
	if requireActive && session.InLobby() {
		return fmt.Errorf("%w: no round in progress", ErrValidation)
	}

	roster, err := s.playerRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(roster) < s.opts.MinPlayers {
		return ErrInsufficientPlayers
	}

	round := game.NewRound(roster, session.ImpostorCount)
	upd := repository.RoundUpdate{
		Word:          round.Word,
		Impostors:     round.ImpostorIDs,
		FirstPlayerID: round.FirstPlayerID,
		RoundNumber:   session.RoundNumber + 1,
	}

	ok, err := s.sessionRepo.UpdateRound(ctx, session.ID, session.RoundNumber, upd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrRoundConflict
	}

	session.CurrentWord = upd.Word
	session.Impostors = upd.Impostors
	session.FirstPlayerID = upd.FirstPlayerID
	session.RoundNumber = upd.RoundNumber
	s.publishSnapshot(ctx, session, roster)

	log.Info().
		Str("code", code).
		Int("round", session.RoundNumber).
		Int("impostors", len(session.Impostors)).
		Msg("round started")
	return nil
}

// RevealCard tells a player whether they are the impostor this round. Pure
// read; calling it twice in the same round yields the same result.
func (s *SessionService) RevealCard(ctx context.Context, code, playerID string) (*model.RevealResult, error) {
	session, err := s.lookupSession(ctx, code)
	if err != nil {
		return nil, err
	}
	if session.InLobby() {
		return nil, fmt.Errorf("%w: no round in progress", ErrValidation)
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if player == nil || player.SessionID != session.ID {
		return nil, ErrPlayerNotFound
	}

	return &model.RevealResult{
		IsImpostor: session.HasImpostor(playerID),
		Word:       game.WordForPlayer(playerID, session.CurrentWord, session.Impostors),
	}, nil
}

// RenamePlayer updates a player's display name, the only mutable player
// field.
func (s *SessionService) RenamePlayer(ctx context.Context, code, playerID, name string) error {
	session, err := s.lookupSession(ctx, code)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = game.FunnyName()
	}
	if err := s.playerRepo.UpdateName(ctx, playerID, name); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.refreshSnapshot(ctx, session)
	return nil
}

// LeaveSession handles a player exit. In the default configuration the
// roster row stays behind and only the client's local identity is cleared;
// with RemovePlayerOnExit set, the row is deleted and subscribers see the
// shrunken roster.
func (s *SessionService) LeaveSession(ctx context.Context, code, playerID string) error {
	if !s.opts.RemovePlayerOnExit {
		return nil
	}

	session, err := s.lookupSession(ctx, code)
	if err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.refreshSnapshot(ctx, session)

	log.Info().Str("code", code).Str("playerId", playerID).Msg("player left")
	return nil
}

// EndSession tears the session down. Host only. Subscribers are
// disconnected, which doubles as the "session closed" signal.
func (s *SessionService) EndSession(ctx context.Context, code, callerID string) error {
	session, err := s.lookupSession(ctx, code)
	if err != nil {
		return err
	}
	if session.HostID != callerID {
		return ErrNotAuthorized
	}

	if err := s.playerRepo.DeleteBySession(ctx, session.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := s.sessionCache.Delete(ctx, code); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("failed to drop session cache entry")
	}
	if s.broadcaster != nil {
		s.broadcaster.DisconnectSession(code)
	}

	log.Info().Str("code", code).Msg("session ended")
	return nil
}

// GetSnapshot returns the current session plus roster, preferring the cache
// and falling back to the store.
func (s *SessionService) GetSnapshot(ctx context.Context, code string) (*model.SessionSnapshot, error) {
	snap, err := s.sessionCache.GetSnapshot(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("code", code).Msg("session cache read failed")
	}
	if snap != nil {
		return snap, nil
	}

	session, err := s.lookupSession(ctx, code)
	if err != nil {
		return nil, err
	}
	roster, err := s.playerRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	snap = &model.SessionSnapshot{
		Session:     *session,
		Players:     roster,
		PlayerCount: len(roster),
	}
	if err := s.sessionCache.SetSnapshot(ctx, code, snap); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("failed to cache snapshot")
	}
	return snap, nil
}

func (s *SessionService) lookupSession(ctx context.Context, code string) (*model.Session, error) {
	session, err := s.sessionRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) generateUniqueCode(ctx context.Context) (string, error) {
	for attempts := 0; attempts < 10; attempts++ {
		code := game.NewSessionCode(s.opts.CodeLength)

		cached, err := s.sessionCache.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if cached {
			continue
		}

		existing, err := s.sessionRepo.GetByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: could not generate a unique session code", ErrStoreUnavailable)
}

// refreshSnapshot re-reads the roster and publishes.
func (s *SessionService) refreshSnapshot(ctx context.Context, session *model.Session) {
	roster, err := s.playerRepo.ListBySession(ctx, session.ID)
	if err != nil {
		log.Warn().Err(err).Str("code", session.Code).Msg("failed to list roster for snapshot")
		return
	}
	s.publishSnapshot(ctx, session, roster)
}

// publishSnapshot is the single change-notification point: cache the new
// state, then push it to every subscriber.
func (s *SessionService) publishSnapshot(ctx context.Context, session *model.Session, roster []model.Player) {
	snap := &model.SessionSnapshot{
		Session:     *session,
		Players:     roster,
		PlayerCount: len(roster),
	}
	if err := s.sessionCache.SetSnapshot(ctx, session.Code, snap); err != nil {
		log.Warn().Err(err).Str("code", session.Code).Msg("failed to cache snapshot")
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastSnapshot(session.Code, snap)
	}
}
