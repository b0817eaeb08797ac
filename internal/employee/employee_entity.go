package employee

import (
	"time"

	"github.com/google/uuid"
)

const StatusActive = "active"

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	ContactNo      string    `gorm:"type:varchar(20);not null"`
	AlternateNo    string    `gorm:"type:varchar(20)"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:uq_employee_email"`
	JoiningCompany string    `gorm:"type:varchar(255);not null"`
	JoiningDate    time.Time `gorm:"type:date;not null"`
	Position       string    `gorm:"type:varchar(255);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const TableName = "employees"

const TableDDL = `
CREATE TABLE IF NOT EXISTS employees (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	contact_no VARCHAR(20) NOT NULL,
	alternate_no VARCHAR(20),
	email VARCHAR(255) NOT NULL,
	joining_company VARCHAR(255) NOT NULL,
	joining_date DATE NOT NULL,
	position VARCHAR(255) NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT uq_employee_email UNIQUE (email)
)`
