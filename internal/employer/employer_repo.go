package employer

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employer_repo.go -destination=mock/employer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employer) error
	FindAll(ctx context.Context) ([]Employer, error)
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

func (r *repository) Create(ctx context.Context, emp *Employer) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO employers
				(id, name, company_name, business_email, business_number, location, designation, company_size, payment_id, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`,
			emp.ID, emp.Name, emp.CompanyName, emp.BusinessEmail, emp.BusinessNumber,
			emp.Location, emp.Designation, emp.CompanySize, emp.PaymentID, emp.Status,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employer, error) {
	var emps []Employer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&emps).Error
	return emps, err
}
