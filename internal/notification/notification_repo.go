package notification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *EmailLog) error
	FindAll(ctx context.Context) ([]EmailLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *EmailLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAll(ctx context.Context) ([]EmailLog, error) {
	var logs []EmailLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
