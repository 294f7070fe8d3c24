package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements the running-balance contract on gorm.
type BalanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// Add applies delta to the user's balance cell, creating the row on first
// use. The increment runs in the database so concurrent adds for the same
// user serialize on the row instead of overwriting each other.
func (r *BalanceRepository) Add(ctx context.Context, userID uuid.UUID, delta float64) error {
	record := Balance{
		UserID:  userID,
		Balance: delta,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"balance":    gorm.Expr("balances.balance + ?", delta),
			"updated_at": time.Now(),
		}),
	}).Create(&record).Error
}

// Get reads the user's balance, 0 when no cell exists yet.
func (r *BalanceRepository) Get(ctx context.Context, userID uuid.UUID) (float64, error) {
	var record Balance
	err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return record.Balance, nil
}
