// Package auth provides sign-up, login, sign-out and bearer-token
// resolution. It owns the session store: login mints an opaque uuid token
// and upserts the user's single session row, sign-out deletes it, and
// Resolve is the auth gate the rest of the system goes through. Nothing
// outside this package ever inspects raw tokens.
package auth

import (
	"context"
	"log/slog"

	userdomain "github.com/Elias-Manica/My-wallet-back/pkg/domain/user"
	"github.com/Elias-Manica/My-wallet-back/pkg/dto"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository"
	"github.com/Elias-Manica/My-wallet-back/pkg/utils"
	"github.com/google/uuid"
)

// Service implements registration and session management.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// SignUp registers a new user. Returns user.ErrEmailTaken when the email
// is already registered.
func (s *Service) SignUp(
	ctx context.Context,
	name, email, password string,
) (u *userdomain.User, err error) {
	log := s.logger.With("context", "SignUp", "email", email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		existing, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return userdomain.ErrEmailTaken
		}
		u, err = userdomain.New(name, email, password)
		if err != nil {
			return err
		}
		return repo.Create(ctx, dto.UserCreate{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			HashedPassword: u.HashedPassword,
		})
	})
	if err != nil {
		u = nil
		log.Error("SignUp failed", "error", err)
		return
	}
	log.Info("SignUp successful", "userID", u.ID)
	return
}

// Login verifies the credentials and rotates the user's session: a fresh
// opaque token replaces whatever session the user had before, so at most
// one token is valid per user at any time.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (token string, err error) {
	log := s.logger.With("context", "Login", "email", email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		sessions, err := uow.SessionRepository()
		if err != nil {
			return err
		}
		u, err := users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil || !utils.CheckPasswordHash(password, u.HashedPassword) {
			return userdomain.ErrInvalidCredentials
		}
		token = uuid.NewString()
		return sessions.Upsert(ctx, dto.SessionUpsert{UserID: u.ID, Token: token})
	})
	if err != nil {
		token = ""
		log.Error("Login failed", "error", err)
		return
	}
	log.Info("Login successful")
	return
}

// SignOut invalidates the session behind the given token. Returns
// user.ErrSessionNotFound when no session matches.
func (s *Service) SignOut(ctx context.Context, token string) (err error) {
	log := s.logger.With("context", "SignOut")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		sessions, err := uow.SessionRepository()
		if err != nil {
			return err
		}
		sess, err := sessions.GetByToken(ctx, token)
		if err != nil {
			return err
		}
		if sess == nil {
			return userdomain.ErrSessionNotFound
		}
		return sessions.DeleteByToken(ctx, token)
	})
	if err != nil {
		log.Error("SignOut failed", "error", err)
		return
	}
	log.Info("SignOut successful")
	return
}

// Resolve maps a bearer token to the user it authenticates. Returns
// user.ErrSessionNotFound for an unknown token; this is an authorization
// failure, distinct from any resource lookup.
func (s *Service) Resolve(ctx context.Context, token string) (userID uuid.UUID, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		sessions, err := uow.SessionRepository()
		if err != nil {
			return err
		}
		sess, err := sessions.GetByToken(ctx, token)
		if err != nil {
			return err
		}
		if sess == nil {
			return userdomain.ErrSessionNotFound
		}
		userID = sess.UserID
		return nil
	})
	if err != nil {
		userID = uuid.Nil
	}
	return
}
