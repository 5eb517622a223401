package game

import (
	"fmt"
	"testing"

	"elimpostor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRoster(n int) []model.Player {
	roster := make([]model.Player, n)
	for i := range roster {
		roster[i] = model.Player{ID: fmt.Sprintf("player_%d", i), Name: fmt.Sprintf("P%d", i)}
	}
	return roster
}

func TestSelectImpostors_Count(t *testing.T) {
	tests := []struct {
		name       string
		rosterSize int
		count      int
		want       int
	}{
		{"zero count", 4, 0, 0},
		{"negative count", 4, -1, 0},
		{"one of four", 4, 1, 1},
		{"two of four", 4, 2, 2},
		{"count equals roster", 4, 4, 4},
		{"count exceeds roster", 4, 10, 4},
		{"single player", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := makeRoster(tt.rosterSize)
			ids := SelectImpostors(roster, tt.count)
			require.Len(t, ids, tt.want)

			// All distinct, all drawn from the roster.
			seen := make(map[string]bool)
			for _, id := range ids {
				assert.False(t, seen[id], "duplicate impostor %s", id)
				seen[id] = true
				assert.True(t, IsImpostor(id, ids))

				found := false
				for _, p := range roster {
					if p.ID == id {
						found = true
					}
				}
				assert.True(t, found, "impostor %s not in roster", id)
			}
		})
	}
}

func TestSelectImpostors_EmptyRoster(t *testing.T) {
	assert.Empty(t, SelectImpostors(nil, 2))
}

func TestSelectImpostors_Uniform(t *testing.T) {
	const trials = 20000
	roster := makeRoster(5)

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		for _, id := range SelectImpostors(roster, 1) {
			counts[id]++
		}
	}

	// Each of 5 players should be picked ~4000 times; allow 15% drift.
	expected := trials / len(roster)
	for _, p := range roster {
		assert.InDelta(t, expected, counts[p.ID], float64(expected)*0.15,
			"selection biased toward or away from %s", p.ID)
	}
}

func TestIsImpostor(t *testing.T) {
	ids := []string{"a", "b"}
	assert.True(t, IsImpostor("a", ids))
	assert.True(t, IsImpostor("b", ids))
	assert.False(t, IsImpostor("c", ids))
	assert.False(t, IsImpostor("a", nil))
}

func TestSelectFirstPlayer_EmptyRoster(t *testing.T) {
	assert.Equal(t, "", SelectFirstPlayer(nil, nil))
}

func TestSelectFirstPlayer_AllImpostors(t *testing.T) {
	roster := makeRoster(3)
	ids := []string{"player_0", "player_1", "player_2"}
	first := SelectFirstPlayer(roster, ids)
	assert.True(t, IsImpostor(first, ids))
}

func TestSelectFirstPlayer_NoImpostors(t *testing.T) {
	roster := makeRoster(3)
	first := SelectFirstPlayer(roster, nil)
	assert.NotEmpty(t, first)
}

func TestSelectFirstPlayer_FavorsInnocents(t *testing.T) {
	const trials = 10000
	roster := makeRoster(4)
	impostorIDs := []string{"player_0"}

	impostorStarts := 0
	for i := 0; i < trials; i++ {
		if SelectFirstPlayer(roster, impostorIDs) == "player_0" {
			impostorStarts++
		}
	}

	// Expected rate is 5%; anything over 10% means the bias is broken.
	assert.Less(t, impostorStarts, trials/10)
	// And it should not be literally impossible.
	assert.Greater(t, impostorStarts, 0)
}

func TestWordForPlayer(t *testing.T) {
	ids := []string{"imp"}
	assert.Equal(t, ImpostorMessage, WordForPlayer("imp", "Asado", ids))
	assert.Equal(t, "Asado", WordForPlayer("someone", "Asado", ids))
}

func TestNewRound(t *testing.T) {
	roster := makeRoster(4)
	round := NewRound(roster, 2)

	require.Len(t, round.ImpostorIDs, 2)
	assert.NotEmpty(t, round.Word)
	assert.NotEmpty(t, round.FirstPlayerID)
	assert.Contains(t, Words(), round.Word)
}
