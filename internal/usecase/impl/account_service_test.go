package impl

import (
	"context"
	"testing"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	store       *memoryStore
	accountRepo *fakeAccountRepository
	hasher      *fakeHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	store := newMemoryStore()
	accountRepo := &fakeAccountRepository{store: store}
	tokenRepo := &fakeResetTokenRepository{store: store}
	hasher := &fakeHasher{}

	service := NewAccountService(AccountServiceParams{
		TxManager:   &fakeTransactionManager{factory: &fakeRepositoryFactory{accountRepo: accountRepo, tokenRepo: tokenRepo}},
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		store:       store,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	view, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice Smith",
	})

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.Equal(t, "Alice Smith", view.FullName)
	assert.Empty(t, view.Phone)
	assert.Empty(t, view.Bio)
	assert.False(t, view.CreatedAt.IsZero())

	stored := fixtures.store.accounts[view.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:s3cretpass", stored.PasswordHash, "plaintext must never be stored")
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice Smith",
	}

	_, err := fixtures.service.Register(ctx, input)
	require.NoError(t, err)

	_, err = fixtures.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "otherpass99",
		FullName: "Alice Clone",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.Len(t, fixtures.store.accounts, 1, "no second row for the same email")
}

func TestAccountService_Register_RacingInsertConflict(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	// FindByEmail sees nothing, but the insert hits the unique constraint:
	// the window where a concurrent registration committed first.
	fixtures.accountRepo.createErr = repository.ErrDuplicateEmail

	_, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Email:    "race@example.com",
		Password: "s3cretpass",
		FullName: "Race Condition",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_Register_HasherFailure(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	fixtures.hasher.hashErr = assert.AnError

	_, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice Smith",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialHashFailed)
	assert.Empty(t, fixtures.store.accounts)
}

func TestAccountService_Login_Roundtrip(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	registered, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice Smith",
	})
	require.NoError(t, err)

	view, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, registered.ID, view.ID)
	assert.Equal(t, "alice@example.com", view.Email)
}

func TestAccountService_Login_FailureIsIndistinguishable(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	_, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
		FullName: "Alice Smith",
	})
	require.NoError(t, err)

	_, wrongPasswordErr := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrongpass99",
	})
	_, unknownEmailErr := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cretpass",
	})

	require.Error(t, wrongPasswordErr)
	require.Error(t, unknownEmailErr)
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_StoreFailure(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	fixtures.store.forcedErr = assert.AnError

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.Error(t, err)

	var storeErr *domainerrors.StoreUnavailableError
	assert.ErrorAs(t, err, &storeErr)
}
