// Package dto holds the flat data shapes that cross layer boundaries
// between services and repositories.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to persist a new user.
type UserCreate struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}
