// Package memstore is an in-memory implementation of the repository
// contracts, used by service and handler tests. Do serializes units of
// work behind one mutex, which gives tests the same guarantee the SQL
// implementation gets from database transactions: a ledger write and its
// balance adjustment are never interleaved with another unit of work.
package memstore

import (
	"context"
	"sync"

	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository"
	balancerepo "github.com/Elias-Manica/My-wallet-back/pkg/repository/balance"
	sessionrepo "github.com/Elias-Manica/My-wallet-back/pkg/repository/session"
	transactionrepo "github.com/Elias-Manica/My-wallet-back/pkg/repository/transaction"
	userrepo "github.com/Elias-Manica/My-wallet-back/pkg/repository/user"
	"github.com/google/uuid"
)

// Store holds all wallet state in memory.
type Store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]dto.UserRead
	emails   map[string]uuid.UUID
	tokens   map[string]uuid.UUID
	sessions map[uuid.UUID]string
	ledger   []dto.TransactionRead
	balances map[uuid.UUID]float64
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]dto.UserRead),
		emails:   make(map[string]uuid.UUID),
		tokens:   make(map[string]uuid.UUID),
		sessions: make(map[uuid.UUID]string),
		balances: make(map[uuid.UUID]float64),
	}
}

// UnitOfWork returns a repository.UnitOfWork over this store.
func (s *Store) UnitOfWork() repository.UnitOfWork {
	return &uow{s: s}
}

type uow struct {
	s *Store
}

func (u *uow) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	return fn(u)
}

func (u *uow) UserRepository() (userrepo.Repository, error) {
	return (*userRepository)(u.s.asRepo()), nil
}

func (u *uow) SessionRepository() (sessionrepo.Repository, error) {
	return (*sessionRepository)(u.s.asRepo()), nil
}

func (u *uow) TransactionRepository() (transactionrepo.Repository, error) {
	return (*transactionRepository)(u.s.asRepo()), nil
}

func (u *uow) BalanceRepository() (balancerepo.Repository, error) {
	return (*balanceRepository)(u.s.asRepo()), nil
}

// repoState is the conversion target that lets each repository type share
// the store's fields without re-exporting them.
type repoState Store

func (s *Store) asRepo() *repoState { return (*repoState)(s) }

type userRepository repoState

func (r *userRepository) Create(ctx context.Context, create dto.UserCreate) error {
	r.users[create.ID] = dto.UserRead{
		ID:             create.ID,
		Name:           create.Name,
		Email:          create.Email,
		HashedPassword: create.HashedPassword,
	}
	r.emails[create.Email] = create.ID
	return nil
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	id, ok := r.emails[email]
	if !ok {
		return nil, nil
	}
	return r.Get(ctx, id)
}

type sessionRepository repoState

func (r *sessionRepository) Upsert(ctx context.Context, upsert dto.SessionUpsert) error {
	if old, ok := r.sessions[upsert.UserID]; ok {
		delete(r.tokens, old)
	}
	r.sessions[upsert.UserID] = upsert.Token
	r.tokens[upsert.Token] = upsert.UserID
	return nil
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*dto.SessionRead, error) {
	userID, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	return &dto.SessionRead{UserID: userID, Token: token}, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if userID, ok := r.tokens[token]; ok {
		delete(r.sessions, userID)
		delete(r.tokens, token)
	}
	return nil
}

type transactionRepository repoState

func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	r.ledger = append(r.ledger, dto.TransactionRead{
		ID:          create.ID,
		UserID:      create.UserID,
		Value:       create.Value,
		Description: create.Description,
		Kind:        create.Kind,
		CreatedAt:   create.CreatedAt,
	})
	return nil
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	for i := range r.ledger {
		if r.ledger[i].ID == id {
			tx := r.ledger[i]
			return &tx, nil
		}
	}
	return nil, nil
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	var result []*dto.TransactionRead
	// Newest first: reverse of insertion order.
	for i := len(r.ledger) - 1; i >= 0; i-- {
		if r.ledger[i].UserID == userID {
			tx := r.ledger[i]
			result = append(result, &tx)
		}
	}
	return result, nil
}

func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error {
	for i := range r.ledger {
		if r.ledger[i].ID == id {
			if update.Value != nil {
				r.ledger[i].Value = *update.Value
			}
			if update.Description != nil {
				r.ledger[i].Description = *update.Description
			}
			return nil
		}
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.ledger {
		if r.ledger[i].ID == id {
			r.ledger = append(r.ledger[:i], r.ledger[i+1:]...)
			return nil
		}
	}
	return nil
}

type balanceRepository repoState

func (r *balanceRepository) Add(ctx context.Context, userID uuid.UUID, delta float64) error {
	r.balances[userID] += delta
	return nil
}

func (r *balanceRepository) Get(ctx context.Context, userID uuid.UUID) (float64, error) {
	return r.balances[userID], nil
}
