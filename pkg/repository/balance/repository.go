// Package balance defines the persistence contract for the running-balance
// cell kept per user.
package balance

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists one running balance per user. The cell is created
// lazily by the first Add; Get reads 0 while no row exists. Add must be
// atomic with respect to concurrent adds for the same user: the increment
// happens in storage, never as a read-modify-write in the application.
type Repository interface {
	Add(ctx context.Context, userID uuid.UUID, delta float64) error
	Get(ctx context.Context, userID uuid.UUID) (float64, error)
}
