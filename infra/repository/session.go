package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository implements the session persistence contract on gorm.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Upsert inserts the session or, when the user already has one, rotates
// the token in place. The user_id primary key enforces one row per user.
func (r *SessionRepository) Upsert(ctx context.Context, upsert dto.SessionUpsert) error {
	record := Session{
		UserID: upsert.UserID,
		Token:  upsert.Token,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"token":      upsert.Token,
			"updated_at": time.Now(),
		}),
	}).Create(&record).Error
}

// GetByToken resolves a bearer token to its session. Returns (nil, nil)
// for an unknown token.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*dto.SessionRead, error) {
	var record Session
	err := r.db.WithContext(ctx).First(&record, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dto.SessionRead{UserID: record.UserID, Token: record.Token}, nil
}

// DeleteByToken removes the session holding the given token. Deleting an
// absent token is not an error; the service layer checks existence first.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&Session{}, "token = ?", token).Error
}
