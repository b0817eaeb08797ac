package hrauth

import (
	"time"

	"github.com/google/uuid"
)

const RoleHR = "hr"

type Credential struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:uq_hr_user_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null;column:password_hash"`
	Role         string    `gorm:"type:varchar(50);not null;default:'hr'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Credential) TableName() string {
	return "hr_users"
}

const TableName = "hr_users"

const TableDDL = `
CREATE TABLE IF NOT EXISTS hr_users (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'hr',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT uq_hr_user_email UNIQUE (email)
)`
