// Package repository provides the gorm-backed persistence layer of the
// wallet and its unit of work.
package repository

import (
	"context"

	"github.com/Elias-Manica/My-wallet-back/pkg/repository"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository/balance"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository/session"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository/transaction"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW implements repository.UnitOfWork on gorm. Outside Do the
// repositories run against the bare connection; inside Do they all share
// the one database transaction.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work over the given connection.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. The UnitOfWork passed to fn is
// bound to that transaction; a non-nil return rolls it back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// UserRepository returns a user repository bound to the current session.
func (u *UoW) UserRepository() (user.Repository, error) {
	return NewUserRepository(u.session()), nil
}

// SessionRepository returns a session repository bound to the current session.
func (u *UoW) SessionRepository() (session.Repository, error) {
	return NewSessionRepository(u.session()), nil
}

// TransactionRepository returns a ledger repository bound to the current session.
func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return NewTransactionRepository(u.session()), nil
}

// BalanceRepository returns a balance repository bound to the current session.
func (u *UoW) BalanceRepository() (balance.Repository, error) {
	return NewBalanceRepository(u.session()), nil
}
