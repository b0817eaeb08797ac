package hrauth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=hrauth_repo.go -destination=mock/hrauth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, cred *Credential) error
	GetByEmail(ctx context.Context, email string) (*Credential, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cred *Credential) error {
	return r.db.WithContext(ctx).Create(cred).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Credential{}).Count(&count).Error
	return count, err
}
