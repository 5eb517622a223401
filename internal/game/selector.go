package game

import (
	"math/rand"

	"elimpostor/internal/model"
)

// Probability that an impostor gets to speak first.
const impostorStartProbability = 0.05

// Round holds everything decided at round start: the word, who the impostors
// are and who speaks first.
type Round struct {
	Word          string
	ImpostorIDs   []string
	FirstPlayerID string
}

// NewRound draws a word, picks impostors and a starting player for the given
// roster.
func NewRound(roster []model.Player, impostorCount int) Round {
	word := RandomWord()
	impostorIDs := SelectImpostors(roster, impostorCount)
	return Round{
		Word:          word,
		ImpostorIDs:   impostorIDs,
		FirstPlayerID: SelectFirstPlayer(roster, impostorIDs),
	}
}

// SelectImpostors picks min(count, len(roster)) distinct player ids uniformly
// at random, via a Fisher-Yates shuffle of a roster copy.
func SelectImpostors(roster []model.Player, count int) []string {
	if count <= 0 || len(roster) == 0 {
		return []string{}
	}

	shuffled := make([]model.Player, len(roster))
	copy(shuffled, roster)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		ids[i] = shuffled[i].ID
	}
	return ids
}

// SelectFirstPlayer picks who reveals first: a non-impostor with probability
// 1-impostorStartProbability, an impostor otherwise. If either group is
// empty the pick is uniform over the other group. An empty roster yields "".
func SelectFirstPlayer(roster []model.Player, impostorIDs []string) string {
	if len(roster) == 0 {
		return ""
	}

	var impostors, innocents []model.Player
	for _, p := range roster {
		if IsImpostor(p.ID, impostorIDs) {
			impostors = append(impostors, p)
		} else {
			innocents = append(innocents, p)
		}
	}

	if len(innocents) == 0 {
		return pickRandom(impostors)
	}
	if len(impostors) == 0 {
		return pickRandom(innocents)
	}

	if rand.Float64() < impostorStartProbability {
		return pickRandom(impostors)
	}
	return pickRandom(innocents)
}

func pickRandom(players []model.Player) string {
	if len(players) == 0 {
		return ""
	}
	return players[rand.Intn(len(players))].ID
}

// IsImpostor reports whether playerID is in the impostor set.
func IsImpostor(playerID string, impostorIDs []string) bool {
	for _, id := range impostorIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// WordForPlayer returns the round word, or the decoy message when the player
// is an impostor.
func WordForPlayer(playerID, word string, impostorIDs []string) string {
	if IsImpostor(playerID, impostorIDs) {
		return ImpostorMessage
	}
	return word
}
