// Package transaction defines the persistence contract for the ledger.
package transaction

import (
	"context"

	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"github.com/google/uuid"
)

// Repository persists ledger records. Get locks the row for update when
// called inside a unit of work, so the read-adjust-write sequences of
// update and delete are serialized per transaction row. Get returns
// (nil, nil) when the id matches no row.
type Repository interface {
	Create(ctx context.Context, create dto.TransactionCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)
	Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
