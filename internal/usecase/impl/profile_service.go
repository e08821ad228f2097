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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	accountRepo repository.AccountRepository
	avatarStore service.AvatarStore
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	AvatarStore service.AvatarStore
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		accountRepo: params.AccountRepo,
		avatarStore: params.AvatarStore,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile applies only the supplied fields as one parameterized update.
// Absent fields are left untouched, not cleared.
func (srv *profileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.AccountView, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("accountID", accountID))

	// The delivery layer already validated this; re-confirm before issuing a
	// write so an empty patch never reaches the store.
	if input.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrNoChanges, "no profile fields supplied")
	}

	// An explicit empty string is absent, not an instruction to clear the
	// stored value. Only non-empty fields make it into the patch.
	patch := entity.AccountPatch{}
	if input.FullName != nil && *input.FullName != "" {
		patch.FullName = input.FullName
	}
	if input.Phone != nil && *input.Phone != "" {
		patch.Phone = input.Phone
	}
	if input.Bio != nil && *input.Bio != "" {
		patch.Bio = input.Bio
	}

	account, err := srv.accountRepo.UpdateFields(ctx, accountID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("accountID", account.ID))

	return usecase.NewAccountView(account), nil
}

// AssignAvatar stores the image bytes in the blob store and records the
// content-derived reference on the account.
func (srv *profileService) AssignAvatar(ctx context.Context, accountID uuid.UUID, imageData []byte) (*usecase.AccountView, error) {
	srv.log(ctx).Info("Assigning avatar", slog.Any("accountID", accountID), slog.Int("bytes", len(imageData)))

	ref, err := srv.avatarStore.Put(ctx, imageData)
	if err != nil {
		srv.log(ctx).Error("Failed to store avatar", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store avatar image")
	}

	account, err := srv.accountRepo.UpdateAvatarRef(ctx, accountID, ref)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to update avatar reference")
	}

	srv.log(ctx).Debug("Avatar assigned", slog.Any("accountID", account.ID), slog.String("avatarRef", ref))

	return usecase.NewAccountView(account), nil
}
