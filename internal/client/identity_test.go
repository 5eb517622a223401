package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileIdentityCache_RoundTrip(t *testing.T) {
	cache, err := NewFileIdentityCache(t.TempDir())
	require.NoError(t, err)

	_, err = cache.Load()
	assert.ErrorIs(t, err, ErrNoIdentity)

	want := Identity{
		Code:       "AB12C",
		PlayerID:   "player_1700000000000_abc1234",
		PlayerName: "El Gaucho Piola",
		IsHost:     true,
	}
	require.NoError(t, cache.Save(want))

	got, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestFileIdentityCache_Clear(t *testing.T) {
	cache, err := NewFileIdentityCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Save(Identity{Code: "AB12C", PlayerID: "p1"}))
	require.NoError(t, cache.Clear())

	_, err = cache.Load()
	assert.ErrorIs(t, err, ErrNoIdentity)

	// Clearing twice is fine.
	require.NoError(t, cache.Clear())
}

func TestRoutePaths(t *testing.T) {
	assert.Equal(t, "/", Home().Path())
	assert.Equal(t, "/?join=AB12C", HomeWithJoin("AB12C").Path())
	assert.Equal(t, "/lobby/AB12C", Lobby("AB12C").Path())
	assert.Equal(t, "/join/AB12C", PlayerLobby("AB12C").Path())
	assert.Equal(t, "/game/AB12C", Game("AB12C").Path())
	assert.Equal(t, "/host/AB12C", HostRoute("AB12C").Path())
}
