package model

import "time"

// Session is the authoritative game record, keyed by a short join code.
// RoundNumber 0 means the session is still in the lobby; once a round is
// active, CurrentWord, Impostors and FirstPlayerID describe that round.
type Session struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Code          string    `json:"code" bson:"code"`
	HostID        string    `json:"hostId" bson:"hostId"`
	ImpostorCount int       `json:"impostorCount" bson:"impostorCount"`
	CurrentWord   string    `json:"currentWord" bson:"currentWord"`
	RoundNumber   int       `json:"roundNumber" bson:"roundNumber"`
	Impostors     []string  `json:"impostors" bson:"impostors"`
	FirstPlayerID string    `json:"firstPlayerId" bson:"firstPlayerId"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// InLobby reports whether no round has started yet.
func (s *Session) InLobby() bool {
	return s.RoundNumber == 0
}

// HasImpostor reports whether playerID is an impostor in the current round.
func (s *Session) HasImpostor(playerID string) bool {
	for _, id := range s.Impostors {
		if id == playerID {
			return true
		}
	}
	return false
}
