package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resetTokenRepository implements the repository.ResetTokenRepository interface using GORM.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create persists a freshly issued token.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return errors.Wrap(err, "failed to create reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a token record by its opaque value.
func (repo *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.ResetToken, error) {
	var tokenM model.ResetTokenModel
	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return toResetTokenDomain(&tokenM), nil
}

// Redeem flips used from false to true as an atomic check-and-set. Zero rows
// affected means another confirmation won the race (or the token was already
// redeemed); the caller decides what that means.
func (repo *resetTokenRepository) Redeem(ctx context.Context, token string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("token = ? AND used = ?", token, false).
		Update("used", true)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to redeem reset token")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toResetTokenDomain(data *model.ResetTokenModel) *entity.ResetToken {
	if data == nil {
		return nil
	}

	return &entity.ResetToken{
		ID:        data.ID,
		AccountID: data.AccountID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}

func fromResetTokenDomain(data *entity.ResetToken) *model.ResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.ResetTokenModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
	}
}
