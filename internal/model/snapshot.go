package model

// SessionSnapshot is the wire view pushed to every subscribed client after a
// mutation. Clients overwrite their local state with it wholesale; there is
// no merge.
type SessionSnapshot struct {
	Session     Session  `json:"session"`
	Players     []Player `json:"players"`
	PlayerCount int      `json:"playerCount"`
}

// RevealResult is what a player sees when flipping their card. It is derived
// from the current session and never mutates shared state.
type RevealResult struct {
	IsImpostor bool   `json:"isImpostor"`
	Word       string `json:"word"`
}
