package postgres

import (
	"context"
	"database/sql"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmailAndCredential matches email and stored credential in one query.
// Callers cannot tell an unknown email from a wrong password, which is the point.
func (repo *accountRepository) FindByEmailAndCredential(ctx context.Context, email, passwordHash string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND password_hash = ?", email, passwordHash).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email and credential")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The unique index on email is the authority
// for duplicates: a racing insert surfaces as ErrDuplicateEmail, never as a
// second row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required account information")
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateFields applies only the fields present in the patch as one
// parameterized UPDATE with a single updated_at refresh.
func (repo *accountRepository) UpdateFields(ctx context.Context, id uuid.UUID, patch entity.AccountPatch) (*entity.Account, error) {
	updates := map[string]any{
		"updated_at": time.Now(),
	}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}

	return repo.applyUpdates(ctx, id, updates)
}

// UpdateCredential replaces the stored password hash.
func (repo *accountRepository) UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := repo.applyUpdates(ctx, id, map[string]any{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})

	return err
}

// UpdateAvatarRef stores the avatar blob reference.
func (repo *accountRepository) UpdateAvatarRef(ctx context.Context, id uuid.UUID, ref string) (*entity.Account, error) {
	return repo.applyUpdates(ctx, id, map[string]any{
		"avatar_ref": ref,
		"updated_at": time.Now(),
	})
}

func (repo *accountRepository) applyUpdates(ctx context.Context, id uuid.UUID, updates map[string]any) (*entity.Account, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FullName:     data.FullName,
		Phone:        data.Phone.String,
		Bio:          data.Bio.String,
		AvatarRef:    data.AvatarRef.String,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FullName:     data.FullName,
		Phone:        toNullString(data.Phone),
		Bio:          toNullString(data.Bio),
		AvatarRef:    toNullString(data.AvatarRef),
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
