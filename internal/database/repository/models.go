package repository

import "time"

// SessionState is the remembered session choice for one user.
type SessionState struct {
	Username   string
	SessionKey string
	UpdatedAt  time.Time
}

// SessionEvent is one audit row for a session selection.
type SessionEvent struct {
	ID         string
	Username   string
	SessionKey string
	SelectedAt time.Time
}
