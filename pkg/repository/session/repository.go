// Package session defines the persistence contract for the session store:
// the index from opaque bearer tokens to user identities.
package session

import (
	"context"

	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
)

// Repository persists bearer sessions. Upsert keeps at most one session
// per user, replacing the token on re-login. GetByToken returns (nil, nil)
// for an unknown token.
type Repository interface {
	Upsert(ctx context.Context, upsert dto.SessionUpsert) error
	GetByToken(ctx context.Context, token string) (*dto.SessionRead, error)
	DeleteByToken(ctx context.Context, token string) error
}
