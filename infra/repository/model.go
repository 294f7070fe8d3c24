package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user record in the database.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"uniqueIndex;size:255;not null"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string { return "users" }

// Session represents an active bearer session. One row per user; the
// token column rotates on re-login.
type Session struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token     string    `gorm:"uniqueIndex;size:64;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Session model.
func (Session) TableName() string { return "sessions" }

// Transaction represents a persisted ledger record. Value is always
// positive; the kind column carries the sign.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Value       float64   `gorm:"not null"`
	Description string    `gorm:"not null"`
	Kind        string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string { return "transactions" }

// Balance is the single running-balance cell kept per user.
type Balance struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance   float64   `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for the Balance model.
func (Balance) TableName() string { return "balances" }

// Migrate creates or updates the wallet schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Session{}, &Transaction{}, &Balance{})
}
