// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a successful registration. It
// carries enough information for downstream consumers to send a welcome
// notification or feed analytics without querying the primary database.
type UserRegisteredEvent struct {
	UID          int64  `json:"uid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}
