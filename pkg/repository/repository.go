// Package repository defines the persistence boundary of the wallet: one
// repository interface per stored entity, and a UnitOfWork that scopes a
// group of repository calls to a single storage transaction.
package repository

import (
	"context"

	"github.com/Elias-Manica/My-wallet-back/pkg/repository/balance"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository/session"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository/transaction"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository/user"
)

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do share the same storage
// session, so a ledger write and its balance adjustment either both commit
// or both roll back.
type UnitOfWork interface {
	// Do runs fn inside a transaction boundary. fn receives a UnitOfWork
	// whose repositories are bound to that transaction. A non-nil return
	// rolls everything back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() (user.Repository, error)
	SessionRepository() (session.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	BalanceRepository() (balance.Repository, error)
}
