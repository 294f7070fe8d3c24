package wallet_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/Elias-Manica/My-wallet-back/internal/fixtures/memstore"
	"github.com/Elias-Manica/My-wallet-back/pkg/domain/transaction"
	userdomain "github.com/Elias-Manica/My-wallet-back/pkg/domain/user"
	"github.com/Elias-Manica/My-wallet-back/pkg/repository"
	"github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	"github.com/Elias-Manica/My-wallet-back/pkg/service/wallet"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) (repository.UnitOfWork, *auth.Service, *wallet.Service) {
	t.Helper()
	uow := memstore.New().UnitOfWork()
	logger := slog.Default()
	return uow, auth.New(uow, logger), wallet.New(uow, logger)
}

func seedUser(t *testing.T, authSvc *auth.Service) uuid.UUID {
	t.Helper()
	u, err := authSvc.SignUp(context.Background(), "Ana", "a@x.com", "abc123")
	require.NoError(t, err)
	return u.ID
}

func TestCreate_AdjustsBalance(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)

	created, err := svc.Create(ctx, userID, 50, "salary", transaction.KindDeposit)
	require.NoError(t, err)
	assert.Equal(t, 50.0, created.Value)
	assert.Equal(t, 50.0, created.Signed())

	read, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, read.Balance)

	_, err = svc.Create(ctx, userID, 20, "groceries", transaction.KindWithdraw)
	require.NoError(t, err)

	read, err = svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, read.Balance)
	assert.Equal(t, "Ana", read.Name)
	assert.Equal(t, "a@x.com", read.Email)
}

func TestCreate_Invalid(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)

	_, err := svc.Create(ctx, userID, -5, "rent", transaction.KindDeposit)
	assert.ErrorIs(t, err, transaction.ErrValueNotPositive)

	_, err = svc.Create(ctx, userID, 10, "", transaction.KindDeposit)
	assert.ErrorIs(t, err, transaction.ErrDescriptionEmpty)

	// Nothing may have leaked into the ledger or the balance.
	txs, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, txs)
	read, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, read.Balance)
}

func TestBalance_DefaultsToZero(t *testing.T) {
	_, authSvc, svc := newServices(t)
	read, err := svc.Balance(context.Background(), seedUser(t, authSvc))
	require.NoError(t, err)
	assert.Equal(t, 0.0, read.Balance)
}

func TestBalance_UnknownUser(t *testing.T) {
	_, _, svc := newServices(t)
	_, err := svc.Balance(context.Background(), uuid.New())
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)

	for _, desc := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, userID, 10, desc, transaction.KindDeposit)
		require.NoError(t, err)
	}

	txs, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "third", txs[0].Description)
	assert.Equal(t, "second", txs[1].Description)
	assert.Equal(t, "first", txs[2].Description)

	// Reads are idempotent: same call, same result.
	again, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, txs, again)
}

func TestDelete_RestoresBalance(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)

	_, err := svc.Create(ctx, userID, 50, "salary", transaction.KindDeposit)
	require.NoError(t, err)
	withdraw, err := svc.Create(ctx, userID, 20, "groceries", transaction.KindWithdraw)
	require.NoError(t, err)

	before, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 30.0, before.Balance)

	// Deleting a withdrawal credits its value back.
	require.NoError(t, svc.Delete(ctx, withdraw.ID))
	after, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, after.Balance)

	txs, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestDelete_DepositCanGoNegative(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)

	deposit, err := svc.Create(ctx, userID, 50, "salary", transaction.KindDeposit)
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, 20, "groceries", transaction.KindWithdraw)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, deposit.ID))
	read, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, -20.0, read.Balance)
}

func TestDelete_NotFound(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)
	_, err := svc.Create(ctx, userID, 50, "salary", transaction.KindDeposit)
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)

	// No mutation on a miss.
	read, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, read.Balance)
}

func TestUpdate_AdjustsByDifference(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)

	deposit, err := svc.Create(ctx, userID, 50, "salary", transaction.KindDeposit)
	require.NoError(t, err)
	withdraw, err := svc.Create(ctx, userID, 20, "groceries", transaction.KindWithdraw)
	require.NoError(t, err)

	// Deposit 50 -> 80: balance moves by +30.
	require.NoError(t, svc.Update(ctx, deposit.ID, 80, "salary plus bonus"))
	read, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 60.0, read.Balance)

	// Withdraw 20 -> 5: balance moves by +15.
	require.NoError(t, svc.Update(ctx, withdraw.ID, 5, "fewer groceries"))
	read, err = svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, read.Balance)

	// The edit keeps the original kind and leaves other rows alone.
	txs, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, transaction.KindWithdraw, txs[0].Kind)
	assert.Equal(t, 5.0, txs[0].Value)
	assert.Equal(t, "fewer groceries", txs[0].Description)
	assert.Equal(t, 80.0, txs[1].Value)
}

func TestUpdate_NotFound(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)
	_, err := svc.Create(ctx, userID, 50, "salary", transaction.KindDeposit)
	require.NoError(t, err)

	err = svc.Update(ctx, uuid.New(), 99, "nope")
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)

	read, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, read.Balance)
}

func TestUpdate_InvalidValue(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)
	deposit, err := svc.Create(ctx, userID, 50, "salary", transaction.KindDeposit)
	require.NoError(t, err)

	err = svc.Update(ctx, deposit.ID, 0, "zeroed")
	assert.ErrorIs(t, err, transaction.ErrValueNotPositive)
}

// The core contract: after any sequence of mutations the stored balance
// equals the signed sum over the surviving ledger rows.
func TestBalanceMatchesLedger(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)

	d1, err := svc.Create(ctx, userID, 100, "salary", transaction.KindDeposit)
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, 30, "rent", transaction.KindWithdraw)
	require.NoError(t, err)
	w2, err := svc.Create(ctx, userID, 10, "coffee", transaction.KindWithdraw)
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, d1.ID, 120, "salary revised"))
	require.NoError(t, svc.Delete(ctx, w2.ID))
	_, err = svc.Create(ctx, userID, 7.5, "snack", transaction.KindWithdraw)
	require.NoError(t, err)

	txs, err := svc.List(ctx, userID)
	require.NoError(t, err)
	var sum float64
	for _, tx := range txs {
		sum += tx.Signed()
	}
	read, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, sum, read.Balance, 1e-9)
	assert.InDelta(t, 82.5, read.Balance, 1e-9)
}

func TestCreate_ConcurrentSameUser(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	userID := seedUser(t, authSvc)

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, userID, 10, "simultaneous deposit", transaction.KindDeposit)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Every deposit must be reflected: no lost updates.
	read, err := svc.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, float64(workers*10), read.Balance)

	txs, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, txs, workers)
}

func TestUsersAreIndependent(t *testing.T) {
	_, authSvc, svc := newServices(t)
	ctx := context.Background()
	ana := seedUser(t, authSvc)
	bob, err := authSvc.SignUp(ctx, "Bob", "b@x.com", "xyz789")
	require.NoError(t, err)

	_, err = svc.Create(ctx, ana, 50, "salary", transaction.KindDeposit)
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, 5, "coffee", transaction.KindWithdraw)
	require.NoError(t, err)

	anaRead, err := svc.Balance(ctx, ana)
	require.NoError(t, err)
	assert.Equal(t, 50.0, anaRead.Balance)

	bobRead, err := svc.Balance(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, -5.0, bobRead.Balance)

	txs, err := svc.List(ctx, ana)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}
