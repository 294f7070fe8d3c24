// Package user defines the persistence contract for user records.
package user

import (
	"context"

	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"github.com/google/uuid"
)

// Repository persists user records. Lookups return (nil, nil) when no row
// matches, an error only on storage failure.
type Repository interface {
	Create(ctx context.Context, create dto.UserCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
}
