// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The unique index on email is the authority for the
// one-account-per-email invariant.
type AccountModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	FullName     string         `gorm:"type:varchar(100);not null"`
	Phone        sql.NullString `gorm:"type:varchar(50)"`
	Bio          sql.NullString `gorm:"type:text"`
	AvatarRef    sql.NullString `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	ResetTokens []ResetTokenModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
