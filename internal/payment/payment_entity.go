package payment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusCreated             = "created"
	StatusPending             = "pending"
	StatusPaid                = "paid"
	StatusFailed              = "failed"
	StatusPendingVerification = "pending_verification"
)

const (
	MethodRazorpay = "razorpay"
	MethodManual   = "manual"
)

// Employer onboarding fee: Rs 999 in paise.
const (
	RegistrationFeeAmount   = int64(99900)
	RegistrationFeeCurrency = "INR"
)

// Payment tracks one provider order. The employer intake fields are
// denormalized onto the row so the Employer record can be constructed
// after verification even though it does not exist yet at order time.
type Payment struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID           string     `gorm:"type:varchar(100);uniqueIndex:uq_payment_order_id"`
	ProviderPaymentID string     `gorm:"type:varchar(100);index"`
	Signature         string     `gorm:"type:varchar(255)"`
	Amount            int64      `gorm:"not null"`
	Currency          string     `gorm:"type:varchar(10);not null"`
	Status            string     `gorm:"type:varchar(30);not null;index"`
	Method            string     `gorm:"type:varchar(30)"`
	EmployerID        *uuid.UUID `gorm:"type:uuid"`
	ReceiptID         string     `gorm:"type:varchar(100)"`

	Name           string `gorm:"type:varchar(255)"`
	CompanyName    string `gorm:"type:varchar(255)"`
	BusinessEmail  string `gorm:"type:varchar(255)"`
	BusinessNumber string `gorm:"type:varchar(20)"`
	Location       string `gorm:"type:varchar(255)"`
	Designation    string `gorm:"type:varchar(255)"`
	CompanySize    int

	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

const TableName = "payments"

const TableDDL = `
CREATE TABLE IF NOT EXISTS payments (
	id UUID PRIMARY KEY,
	order_id VARCHAR(100) NOT NULL,
	provider_payment_id VARCHAR(100),
	signature VARCHAR(255),
	amount BIGINT NOT NULL,
	currency VARCHAR(10) NOT NULL,
	status VARCHAR(30) NOT NULL,
	method VARCHAR(30),
	employer_id UUID,
	receipt_id VARCHAR(100),
	name VARCHAR(255),
	company_name VARCHAR(255),
	business_email VARCHAR(255),
	business_number VARCHAR(20),
	location VARCHAR(255),
	designation VARCHAR(255),
	company_size INT,
	paid_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT uq_payment_order_id UNIQUE (order_id)
)`
