package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

const (
	KindEmployeeWelcome      = "employee_welcome"
	KindEmployerConfirmation = "employer_confirmation"

	RecipientEmployee = "employee"
	RecipientEmployer = "employer"
)

// EmailLog is an append-only audit trail: exactly one row per send
// attempt, success or failure. Rows are never updated or deleted.
type EmailLog struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Recipient         string    `gorm:"type:varchar(255);not null;index"`
	RecipientKind     string    `gorm:"type:varchar(50)"`
	Subject           string    `gorm:"type:varchar(255)"`
	Body              string    `gorm:"type:text"`
	Kind              string    `gorm:"type:varchar(50)"`
	Status            string    `gorm:"type:varchar(20);not null"`
	ErrorText         string    `gorm:"type:text"`
	SentBy            string    `gorm:"type:varchar(255)"`
	ProviderMessageID string    `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
}

func (EmailLog) TableName() string {
	return "email_logs"
}

const EmailLogTableName = "email_logs"

const EmailLogTableDDL = `
CREATE TABLE IF NOT EXISTS email_logs (
	id UUID PRIMARY KEY,
	recipient VARCHAR(255) NOT NULL,
	recipient_kind VARCHAR(50),
	subject VARCHAR(255),
	body TEXT,
	kind VARCHAR(50),
	status VARCHAR(20) NOT NULL,
	error_text TEXT,
	sent_by VARCHAR(255),
	provider_message_id VARCHAR(255),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
