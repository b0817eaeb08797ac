package payment

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*Payment, error)
	MarkPaid(ctx context.Context, id uuid.UUID, providerPaymentID, signature, method string) error
	LinkEmployer(ctx context.Context, id uuid.UUID, employerID uuid.UUID) error
	// MarkCaptured is the webhook reconciliation write: match by the
	// provider payment id, falling back to the order id. Returns the
	// number of rows updated so callers can log unmatched events.
	MarkCaptured(ctx context.Context, providerPaymentID, orderID, method string) (int64, error)
	FindAll(ctx context.Context) ([]Payment, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByOrderID(ctx context.Context, orderID string) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) MarkPaid(ctx context.Context, id uuid.UUID, providerPaymentID, signature, method string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			UPDATE payments
			SET status = $2, provider_payment_id = $3, signature = $4, method = $5, paid_at = NOW(), updated_at = NOW()
			WHERE id = $1
		`, id, StatusPaid, providerPaymentID, signature, method)
		return err
	}
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              StatusPaid,
			"provider_payment_id": providerPaymentID,
			"signature":           signature,
			"method":              method,
			"paid_at":             now,
		}).Error
}

func (r *repository) LinkEmployer(ctx context.Context, id uuid.UUID, employerID uuid.UUID) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			UPDATE payments SET employer_id = $2, updated_at = NOW() WHERE id = $1
		`, id, employerID)
		return err
	}
	return r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("id = ?", id).
		Update("employer_id", employerID).Error
}

func (r *repository) MarkCaptured(ctx context.Context, providerPaymentID, orderID, method string) (int64, error) {
	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":              StatusPaid,
		"provider_payment_id": providerPaymentID,
		"method":              method,
		"paid_at":             now,
	}

	res := r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("provider_payment_id = ? AND status <> ?", providerPaymentID, StatusPaid).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		return res.RowsAffected, nil
	}

	res = r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("order_id = ? AND status <> ?", orderID, StatusPaid).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
