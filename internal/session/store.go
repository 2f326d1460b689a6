// Package session implements the session directory: the mapping from an
// opaque bearer token to the uid of the user who logged in with it. Two
// implementations exist, an in-process store for single-instance deployments
// and a Redis-backed store so multiple instances can share one directory.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// ErrNotFound is returned by Resolve when a token is not bound to any uid,
// either because it was never issued or because it was already revoked.
var ErrNotFound = errors.New("session not found")

// Store is the session directory. Every login calls Issue, every
// authenticated request calls Resolve, and logout calls Revoke. A token maps
// to at most one uid; a user may hold any number of live tokens at once.
type Store interface {
	// Issue binds a fresh opaque token to the uid and returns it.
	Issue(ctx context.Context, uid int64) (string, error)
	// Resolve returns the uid bound to the token or ErrNotFound.
	Resolve(ctx context.Context, token string) (int64, error)
	// Revoke removes the binding and reports whether one existed. Revoking
	// an absent token is not an error.
	Revoke(ctx context.Context, token string) (bool, error)
}

// NewToken returns an opaque URL-safe token built from 32 bytes of
// cryptographically secure randomness, giving 256 bits of entropy.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
