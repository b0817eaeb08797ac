package employer

import (
	"time"

	"github.com/google/uuid"
)

const StatusActive = "active"

// Employer rows are only ever written by the payment verification flow:
// a row exists if and only if a verified Payment funded it.
type Employer struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string     `gorm:"type:varchar(255);not null"`
	CompanyName    string     `gorm:"type:varchar(255);not null"`
	BusinessEmail  string     `gorm:"type:varchar(255);uniqueIndex:uq_employer_business_email"`
	BusinessNumber string     `gorm:"type:varchar(20)"`
	Location       string     `gorm:"type:varchar(255)"`
	Designation    string     `gorm:"type:varchar(255)"`
	CompanySize    int        `gorm:"not null"`
	PaymentID      *uuid.UUID `gorm:"type:uuid;index"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const TableName = "employers"

const TableDDL = `
CREATE TABLE IF NOT EXISTS employers (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	company_name VARCHAR(255) NOT NULL,
	business_email VARCHAR(255) NOT NULL,
	business_number VARCHAR(20),
	location VARCHAR(255),
	designation VARCHAR(255),
	company_size INT NOT NULL,
	payment_id UUID,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT uq_employer_business_email UNIQUE (business_email)
)`
