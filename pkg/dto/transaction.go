package dto

import (
	"time"

	"github.com/Elias-Manica/My-wallet-back/pkg/domain/transaction"
	"github.com/google/uuid"
)

// TransactionCreate represents the data needed to persist a new transaction.
type TransactionCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Value       float64
	Description string
	Kind        transaction.Kind
	CreatedAt   time.Time
}

// TransactionUpdate carries the editable fields of a transaction. Nil
// means "leave unchanged". Kind is deliberately absent: the reference
// behavior never rewrites a transaction's type.
type TransactionUpdate struct {
	Value       *float64
	Description *string
}

// TransactionRead represents a read-optimized view of a transaction.
type TransactionRead struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Value       float64
	Description string
	Kind        transaction.Kind
	CreatedAt   time.Time
}

// Signed returns the transaction's contribution to the running balance.
func (t *TransactionRead) Signed() float64 {
	return transaction.Signed(t.Kind, t.Value)
}

// BalanceRead is the balance summary returned to an authenticated user.
type BalanceRead struct {
	Name    string
	Email   string
	Balance float64
}
