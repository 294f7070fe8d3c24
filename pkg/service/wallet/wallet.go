// Package wallet implements the transaction service: every ledger mutation
// and its balance adjustment run inside one unit of work, so the running
// balance always equals the signed sum of the user's transactions.
package wallet

import (
	"context"
	"log/slog"

	"github.com/Elias-Manica/My-wallet-back/pkg/domain/transaction"
	userdomain "github.com/Elias-Manica/My-wallet-back/pkg/domain/user"
	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for transactions and the running balance.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create validates and records a transaction, crediting or debiting the
// user's balance in the same unit of work. The balance row is created
// lazily by the first transaction.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	value float64,
	description string,
	kind transaction.Kind,
) (created *dto.TransactionRead, err error) {
	log := s.logger.With("context", "Create", "userID", userID)
	tx, err := transaction.New(userID, value, description, kind)
	if err != nil {
		log.Error("Create failed: domain error", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		balances, err := uow.BalanceRepository()
		if err != nil {
			return err
		}
		if err = ledger.Create(ctx, dto.TransactionCreate{
			ID:          tx.ID,
			UserID:      tx.UserID,
			Value:       tx.Value,
			Description: tx.Description,
			Kind:        tx.Kind,
			CreatedAt:   tx.CreatedAt,
		}); err != nil {
			return err
		}
		return balances.Add(ctx, userID, tx.Signed())
	})
	if err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	log.Info("Create successful", "transactionID", tx.ID, "kind", tx.Kind)
	return &dto.TransactionRead{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Value:       tx.Value,
		Description: tx.Description,
		Kind:        tx.Kind,
		CreatedAt:   tx.CreatedAt,
	}, nil
}

// List returns the user's transactions, newest first.
func (s *Service) List(
	ctx context.Context,
	userID uuid.UUID,
) (txs []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txs, err = ledger.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		txs = nil
	}
	return
}

// Update edits a transaction's value and description and corrects the
// owner's balance by the difference the edit introduces, signed by the
// transaction's original kind. The kind itself is never rewritten.
// Returns transaction.ErrTransactionNotFound without mutating anything
// when the id matches no record.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	value float64,
	description string,
) (err error) {
	log := s.logger.With("context", "Update", "transactionID", id)
	if err = transaction.ValidateValue(value); err != nil {
		return err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		balances, err := uow.BalanceRepository()
		if err != nil {
			return err
		}
		old, err := ledger.Get(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return transaction.ErrTransactionNotFound
		}
		if err = ledger.Update(ctx, id, dto.TransactionUpdate{
			Value:       &value,
			Description: &description,
		}); err != nil {
			return err
		}
		// Correct by the delta, not by recomputing the whole ledger.
		return balances.Add(ctx, old.UserID, transaction.Signed(old.Kind, value-old.Value))
	})
	if err != nil {
		log.Error("Update failed", "error", err)
		return
	}
	log.Info("Update successful")
	return
}

// Delete removes a transaction and reverses its signed effect on the
// owner's balance. Returns transaction.ErrTransactionNotFound without
// mutating anything when the id matches no record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (err error) {
	log := s.logger.With("context", "Delete", "transactionID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		balances, err := uow.BalanceRepository()
		if err != nil {
			return err
		}
		old, err := ledger.Get(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return transaction.ErrTransactionNotFound
		}
		if err = ledger.Delete(ctx, id); err != nil {
			return err
		}
		return balances.Add(ctx, old.UserID, -old.Signed())
	})
	if err != nil {
		log.Error("Delete failed", "error", err)
		return
	}
	log.Info("Delete successful")
	return
}

// Balance returns the user's display name, email and running balance.
// A user with no balance row reads as 0; that is a valid state, not an
// error.
func (s *Service) Balance(
	ctx context.Context,
	userID uuid.UUID,
) (read *dto.BalanceRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		balances, err := uow.BalanceRepository()
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return userdomain.ErrUserNotFound
		}
		total, err := balances.Get(ctx, userID)
		if err != nil {
			return err
		}
		read = &dto.BalanceRead{Name: u.Name, Email: u.Email, Balance: total}
		return nil
	})
	if err != nil {
		read = nil
	}
	return
}
