package dto

import "github.com/google/uuid"

// SessionUpsert replaces the active session for a user. A user holds at
// most one session row; logging in again rotates the token in place.
type SessionUpsert struct {
	UserID uuid.UUID
	Token  string
}

// SessionRead represents an active bearer session.
type SessionRead struct {
	UserID uuid.UUID
	Token  string
}
