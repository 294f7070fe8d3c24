// Package transaction holds the wallet's core domain entity: a single money
// movement owned by a user. A transaction's sign is implied by its kind, the
// stored value is always positive.
package transaction

import (
	"errors"
	"math"
	"time"

	"github.com/Elias-Manica/My-wallet-back/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrTransactionNotFound is returned when a transaction id resolves to no record.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrValueNotPositive is returned when a transaction value is zero, negative or not finite.
	ErrValueNotPositive = errors.New("value must be a positive number")

	// ErrDescriptionEmpty is returned when a description has no letter or digit in it.
	ErrDescriptionEmpty = errors.New("description must contain at least one letter or number")

	// ErrInvalidKind is returned when a transaction kind is neither deposit nor withdraw.
	ErrInvalidKind = errors.New(`type must be either "deposit" or "withdraw"`)
)

// DateLayout renders a transaction date at day/month granularity, the only
// date precision the wallet API exposes.
const DateLayout = "02/01"

// Kind tells whether a transaction adds to or subtracts from the balance.
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindWithdraw Kind = "withdraw"
)

// ParseKind validates a raw kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeposit, KindWithdraw:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

// Transaction is one money movement. Value is stored unsigned; use Signed
// for the balance contribution.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Value       float64
	Description string
	Kind        Kind
	CreatedAt   time.Time
}

// New builds a validated transaction for the given user.
func New(userID uuid.UUID, value float64, description string, kind Kind) (*Transaction, error) {
	if err := ValidateValue(value); err != nil {
		return nil, err
	}
	if !utils.HasAlphanumeric(description) {
		return nil, ErrDescriptionEmpty
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Value:       value,
		Description: description,
		Kind:        kind,
		CreatedAt:   time.Now(),
	}, nil
}

// ValidateValue checks that a monetary value is finite and strictly positive.
func ValidateValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return ErrValueNotPositive
	}
	return nil
}

// Signed returns the transaction's contribution to the running balance.
func (t *Transaction) Signed() float64 {
	return Signed(t.Kind, t.Value)
}

// Signed applies a kind's sign to a magnitude: deposits count positive,
// withdrawals negative.
func Signed(kind Kind, value float64) float64 {
	if kind == KindWithdraw {
		return -value
	}
	return value
}
