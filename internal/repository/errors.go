// Package repository implements MongoDB persistence for users and contacts.
// This file defines sentinel error values shared by the repositories so that
// handlers can map each failure to the right HTTP status without inspecting
// driver errors.
package repository

import "errors"

// ErrUserNotFound is returned when no user matches the given uid or account.
var ErrUserNotFound = errors.New("user not found")

// ErrContactNotFound is returned when a contact lookup or owner-scoped
// mutation matches zero documents. A contact owned by someone else is
// indistinguishable from a missing one on purpose.
var ErrContactNotFound = errors.New("contact not found")
