// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the persisted identity record for one user. It is the system of
// record for the rest of the application; every other feature resolves a user
// through it.
type Account struct {
	ID           uuid.UUID // Store-assigned unique identifier, immutable.
	Email        string    // Unique login identifier, immutable after registration.
	PasswordHash string    // The stored credential. Never the plaintext, never serialized outward.
	FullName     string    // Required at registration, mutable afterwards.
	Phone        string    // Optional, mutable.
	Bio          string    // Optional, mutable.
	AvatarRef    string    // Optional reference into the avatar blob store, mutable.
	CreatedAt    time.Time
	UpdatedAt    time.Time // Refreshed on any mutation.
}

// AccountPatch is an explicit set of optional field slots for a partial
// profile update. A nil slot leaves the stored value untouched; presence is
// tagged by the pointer, not by empty-vs-zero ambiguity.
type AccountPatch struct {
	FullName *string
	Phone    *string
	Bio      *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p AccountPatch) IsEmpty() bool {
	return p.FullName == nil && p.Phone == nil && p.Bio == nil
}
