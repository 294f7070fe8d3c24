package repository

import (
	"context"
	"errors"

	domain "github.com/Elias-Manica/My-wallet-back/pkg/domain/transaction"
	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the ledger persistence contract on gorm.
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create persists a new ledger record.
func (r *TransactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	record := Transaction{
		ID:          create.ID,
		UserID:      create.UserID,
		Value:       create.Value,
		Description: create.Description,
		Kind:        string(create.Kind),
		CreatedAt:   create.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

// Get fetches a ledger record by id, locking the row for update when the
// repository is bound to a transaction. Returns (nil, nil) when the id
// matches no row.
func (r *TransactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var record Transaction
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return transactionToRead(&record), nil
}

// ListByUser returns the user's ledger, newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	var records []Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	reads := make([]*dto.TransactionRead, 0, len(records))
	for i := range records {
		reads = append(reads, transactionToRead(&records[i]))
	}
	return reads, nil
}

// Update rewrites the editable columns of a ledger record. The kind column
// is never touched.
func (r *TransactionRepository) Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error {
	assignments := map[string]any{}
	if update.Value != nil {
		assignments["value"] = *update.Value
	}
	if update.Description != nil {
		assignments["description"] = *update.Description
	}
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ?", id).
		Updates(assignments).Error
}

// Delete removes a ledger record by id.
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", id).Error
}

func transactionToRead(record *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:          record.ID,
		UserID:      record.UserID,
		Value:       record.Value,
		Description: record.Description,
		Kind:        domain.Kind(record.Kind),
		CreatedAt:   record.CreatedAt,
	}
}
