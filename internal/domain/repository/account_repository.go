// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. The application layer
// handles these outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an insert collides with the unique
	// constraint on email. The constraint is the authority; a racing insert
	// must surface as this error, never as a duplicate row.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByEmailAndCredential retrieves the account matching both email and
	// hashed credential in one query. Login never fetches-then-compares, so
	// unknown-email and wrong-password are indistinguishable to callers.
	FindByEmailAndCredential(ctx context.Context, email, passwordHash string) (*entity.Account, error)

	// Create persists a new account, rejecting duplicate emails atomically
	// with ErrDuplicateEmail.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateFields applies only the fields present in the patch and refreshes
	// updated_at in the same statement. Returns the updated account, or
	// ErrAccountNotFound when no row matches.
	UpdateFields(ctx context.Context, id uuid.UUID, patch entity.AccountPatch) (*entity.Account, error)

	// UpdateCredential replaces the stored password hash and refreshes updated_at.
	UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateAvatarRef stores the avatar blob reference and refreshes
	// updated_at. Returns the updated account, or ErrAccountNotFound.
	UpdateAvatarRef(ctx context.Context, id uuid.UUID, ref string) (*entity.Account, error)
}
