package auth_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Elias-Manica/My-wallet-back/internal/fixtures/memstore"
	userdomain "github.com/Elias-Manica/My-wallet-back/pkg/domain/user"
	"github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	return auth.New(memstore.New().UnitOfWork(), slog.Default())
}

func TestSignUp(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.SignUp(ctx, "Ana", "a@x.com", "abc123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.NotEqual(t, "abc123", u.HashedPassword)

	// Same email again is a conflict.
	_, err = svc.SignUp(ctx, "Other Ana", "a@x.com", "different")
	assert.ErrorIs(t, err, userdomain.ErrEmailTaken)
}

func TestSignUp_InvalidFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "", "a@x.com", "abc123")
	assert.ErrorIs(t, err, userdomain.ErrInvalidName)
	_, err = svc.SignUp(ctx, "Ana", "nope", "abc123")
	assert.ErrorIs(t, err, userdomain.ErrInvalidEmail)
	_, err = svc.SignUp(ctx, "Ana", "a@x.com", "")
	assert.ErrorIs(t, err, userdomain.ErrInvalidPassword)
}

func TestLogin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	u, err := svc.SignUp(ctx, "Ana", "a@x.com", "abc123")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "a@x.com", "abc123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "Ana", "a@x.com", "abc123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, userdomain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "unknown@x.com", "abc123")
	assert.ErrorIs(t, err, userdomain.ErrInvalidCredentials)
}

// Logging in again replaces the previous session instead of stacking a
// second token.
func TestLogin_RotatesToken(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	u, err := svc.SignUp(ctx, "Ana", "a@x.com", "abc123")
	require.NoError(t, err)

	first, err := svc.Login(ctx, "a@x.com", "abc123")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "a@x.com", "abc123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = svc.Resolve(ctx, first)
	assert.ErrorIs(t, err, userdomain.ErrSessionNotFound)

	userID, err := svc.Resolve(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestSignOut(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "Ana", "a@x.com", "abc123")
	require.NoError(t, err)
	token, err := svc.Login(ctx, "a@x.com", "abc123")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, token))

	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, userdomain.ErrSessionNotFound)

	// Signing out twice reports the missing session.
	err = svc.SignOut(ctx, token)
	assert.ErrorIs(t, err, userdomain.ErrSessionNotFound)
}

func TestResolve_UnknownToken(t *testing.T) {
	svc := newService(t)
	_, err := svc.Resolve(context.Background(), "not-a-session")
	assert.ErrorIs(t, err, userdomain.ErrSessionNotFound)
}
