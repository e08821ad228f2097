package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resetService implements the ResetUsecase interface.
type resetService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	tokenRepo   repository.ResetTokenRepository
	generator   service.ResetTokenGenerator
	hasher      service.PasswordHasher
	notifier    service.ResetNotifier
	logger      *slog.Logger
	now         func() time.Time
}

// ResetServiceParams holds dependencies for resetService, injected by Fx.
type ResetServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	TokenRepo   repository.ResetTokenRepository
	Generator   service.ResetTokenGenerator
	Hasher      service.PasswordHasher
	Notifier    service.ResetNotifier
	Logger      *slog.Logger
}

// NewResetService is the constructor for resetService.
func NewResetService(params ResetServiceParams) usecase.ResetUsecase {
	return &resetService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		tokenRepo:   params.TokenRepo,
		generator:   params.Generator,
		hasher:      params.Hasher,
		notifier:    params.Notifier,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *resetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset issues a fresh single-use token for the account behind the
// email. Outstanding tokens for the same account stay valid; each is
// independent.
func (srv *resetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) (*usecase.RequestResetOutput, error) {
	srv.log(ctx).Info("Reset requested", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "no account for email")
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to look up account for reset")
	}

	tokenValue, err := srv.generator.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate reset token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	resetToken := &entity.ResetToken{
		AccountID: account.ID,
		Token:     tokenValue,
		ExpiresAt: srv.now().Add(entity.ResetTokenValidity),
	}

	if err := srv.tokenRepo.Create(ctx, resetToken); err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to store reset token")
	}

	// Out-of-band delivery. A notifier failure does not invalidate the token;
	// the caller still receives it in the response.
	if err := srv.notifier.Notify(ctx, account.Email, tokenValue, resetToken.ExpiresAt); err != nil {
		srv.log(ctx).Warn("Reset notification failed", slog.String("email", account.Email), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Reset token issued", slog.Any("accountID", account.ID), slog.Time("expiresAt", resetToken.ExpiresAt))

	return &usecase.RequestResetOutput{
		Token:     tokenValue,
		ExpiresAt: resetToken.ExpiresAt,
	}, nil
}

// ConfirmReset redeems a token and swaps the account credential as one atomic
// unit. A crash between the two writes must not leave a changed password with
// a still-redeemable token, or a consumed token with the old password.
func (srv *resetService) ConfirmReset(ctx context.Context, input *usecase.ConfirmResetInput) error {
	srv.log(ctx).Info("Confirming reset")

	// Hash outside the transaction; key derivation is CPU-bound.
	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCredentialHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.ResetTokenRepo()
		accountRepo := repoFactory.AccountRepo()

		resetToken, findErr := tokenRepo.FindByToken(ctx, input.Token)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrResetTokenNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenNotFound, "unknown reset token")
			}

			return domainerrors.NewStoreUnavailableError(findErr, "failed to look up reset token")
		}

		// Used wins over expired: a token that is both reports AlreadyUsed.
		if resetToken.Used {
			return errors.Wrap(domainerrors.ErrResetTokenAlreadyUsed, "reset token already redeemed")
		}
		if srv.now().After(resetToken.ExpiresAt) {
			return errors.Wrap(domainerrors.ErrResetTokenExpired, "reset token expired")
		}

		redeemed, redeemErr := tokenRepo.Redeem(ctx, input.Token)
		if redeemErr != nil {
			return domainerrors.NewStoreUnavailableError(redeemErr, "failed to redeem reset token")
		}
		if !redeemed {
			// A concurrent confirmation won the check-and-set.
			return errors.Wrap(domainerrors.ErrResetTokenAlreadyUsed, "reset token already redeemed")
		}

		if updateErr := accountRepo.UpdateCredential(ctx, resetToken.AccountID, newHash); updateErr != nil {
			return domainerrors.NewStoreUnavailableError(updateErr, "failed to update account credential")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Reset confirmation failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reset confirmation transaction")
	}

	srv.log(ctx).Debug("Reset confirmed")

	return nil
}
