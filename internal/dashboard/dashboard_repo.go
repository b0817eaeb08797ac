package dashboard

import (
	"context"

	"gorm.io/gorm"

	"github.com/nitinco/nexsphere/internal/employee"
	"github.com/nitinco/nexsphere/internal/employer"
	"github.com/nitinco/nexsphere/internal/notification"
	"github.com/nitinco/nexsphere/internal/payment"
)

type Stats struct {
	Employees    int64 `json:"employees"`
	Employers    int64 `json:"employers"`
	Payments     int64 `json:"payments"`
	PaidPayments int64 `json:"paid_payments"`
	Revenue      int64 `json:"revenue"`
	Emails       int64 `json:"emails"`
	EmailsSent   int64 `json:"emails_sent"`
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CollectStats(ctx context.Context) (Stats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CollectStats aggregates across all four stores. Each table is probed
// individually: a table nobody has written to yet simply contributes
// zeros instead of failing the whole dashboard.
func (r *repository) CollectStats(ctx context.Context) (Stats, error) {
	var stats Stats
	db := r.db.WithContext(ctx)

	if db.Migrator().HasTable(employee.TableName) {
		if err := db.Table(employee.TableName).Count(&stats.Employees).Error; err != nil {
			return Stats{}, err
		}
	}

	if db.Migrator().HasTable(employer.TableName) {
		if err := db.Table(employer.TableName).Count(&stats.Employers).Error; err != nil {
			return Stats{}, err
		}
	}

	if db.Migrator().HasTable(payment.TableName) {
		if err := db.Table(payment.TableName).Count(&stats.Payments).Error; err != nil {
			return Stats{}, err
		}
		if err := db.Table(payment.TableName).
			Where("status = ?", payment.StatusPaid).
			Count(&stats.PaidPayments).Error; err != nil {
			return Stats{}, err
		}
		if err := db.Table(payment.TableName).
			Select("COALESCE(SUM(amount), 0)").
			Where("status = ?", payment.StatusPaid).
			Scan(&stats.Revenue).Error; err != nil {
			return Stats{}, err
		}
	}

	if db.Migrator().HasTable(notification.EmailLogTableName) {
		if err := db.Table(notification.EmailLogTableName).Count(&stats.Emails).Error; err != nil {
			return Stats{}, err
		}
		if err := db.Table(notification.EmailLogTableName).
			Where("status = ?", notification.StatusSent).
			Count(&stats.EmailsSent).Error; err != nil {
			return Stats{}, err
		}
	}

	return stats, nil
}
