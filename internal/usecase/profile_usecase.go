package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the data for a partial profile update. A nil or
// empty-string field is absent; absent fields are left untouched, never
// cleared.
type UpdateProfileInput struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// IsEmpty reports whether no usable field was supplied. An explicit empty
// string counts as absent, the same as a missing key.
func (in *UpdateProfileInput) IsEmpty() bool {
	return in == nil || (isAbsent(in.FullName) && isAbsent(in.Phone) && isAbsent(in.Bio))
}

func isAbsent(field *string) bool {
	return field == nil || *field == ""
}

// ProfileUsecase defines the interface for profile mutation operations.
type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*AccountView, error)
	AssignAvatar(ctx context.Context, accountID uuid.UUID, imageData []byte) (*AccountView, error)
}
