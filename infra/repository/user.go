package repository

import (
	"context"
	"errors"

	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements the user persistence contract on gorm.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user record.
func (r *UserRepository) Create(ctx context.Context, create dto.UserCreate) error {
	record := User{
		ID:       create.ID,
		Name:     create.Name,
		Email:    create.Email,
		Password: create.HashedPassword,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

// Get fetches a user by id. Returns (nil, nil) when no row matches.
func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var record User
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userToRead(&record), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) when no row matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	var record User
	err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userToRead(&record), nil
}

func userToRead(record *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             record.ID,
		Name:           record.Name,
		Email:          record.Email,
		HashedPassword: record.Password,
		CreatedAt:      record.CreatedAt,
	}
}
