package model

import "time"

// Player represents a participant in a session. IDs are client-generated
// tokens and trusted by the store; JoinedAt is used only for stable roster
// ordering.
type Player struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	SessionID string    `json:"sessionId" bson:"sessionId"`
	JoinedAt  time.Time `json:"joinedAt" bson:"joinedAt"`
}
