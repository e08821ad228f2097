// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account for an unclaimed email. The store's unique
// constraint is the authority on duplicates: a racing second registration
// surfaces as a conflict, never as a second row.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountView, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialHashFailed, "failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Email:        input.Email,
		PasswordHash: passwordHash,
		FullName:     input.FullName,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return domainerrors.NewStoreUnavailableError(findErr, "failed to check for existing account")
		}

		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
			}

			return domainerrors.NewStoreUnavailableError(createErr, "failed to create account")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return usecase.NewAccountView(newAccount), nil
}

// Login authenticates by matching email and hashed credential in a single
// query. Unknown email and wrong password return the same failure; nothing in
// the response or its timing separates the two cases.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountView, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during login", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialHashFailed, "failed to hash password during login")
	}

	account, err := srv.accountRepo.FindByEmailAndCredential(ctx, input.Email, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to look up account for login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return usecase.NewAccountView(account), nil
}
