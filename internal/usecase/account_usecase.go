// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AccountView is the outward projection of an account. The stored credential
// never appears here.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarRef string    `json:"avatar_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAccountView projects an account entity, dropping the credential.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:        account.ID,
		Email:     account.Email,
		FullName:  account.FullName,
		Phone:     account.Phone,
		Bio:       account.Bio,
		AvatarRef: account.AvatarRef,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// AccountUsecase defines the interface for registration and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AccountView, error)
	Login(ctx context.Context, input *LoginInput) (*AccountView, error)
}
