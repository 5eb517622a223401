package service

import "elimpostor/internal/model"

// Broadcaster pushes session snapshots to subscribed clients (avoids import
// cycle with the ws package, which implements it).
type Broadcaster interface {
	BroadcastSnapshot(code string, snap *model.SessionSnapshot)
	DisconnectSession(code string)
}
