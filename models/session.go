package models

import "time"

// LocalSession is the chat client's persisted session handle. It replaces
// the browser localStorage of the original web client: enough state to
// come back into the same account and conversation after a restart.
type LocalSession struct {
	// Email identifies the logged-in account.
	Email string `json:"email"`

	// SessionID is the chat session the user last had open.
	SessionID string `json:"session_id"`

	// Token is the bearer token issued by the backend at login.
	Token string `json:"token"`

	// SavedAt is when this handle was last written.
	SavedAt time.Time `json:"saved_at"`
}
