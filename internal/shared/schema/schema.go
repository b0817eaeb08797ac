package schema

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nitinco/nexsphere/internal/shared/apperror"
)

// Migrator is the slice of the database the bootstrapper needs. The
// production implementation wraps gorm; tests use fakes.
type Migrator interface {
	HasTable(ctx context.Context, name string) bool
	Exec(ctx context.Context, ddl string) error
}

// EnsureTabler is what services depend on.
//
//go:generate mockgen -source=schema.go -destination=mock/schema_mock.go -package=mock
type EnsureTabler interface {
	// EnsureTable creates the table if absent. The returned bool is true
	// when this call created it (drives one-time seeding).
	EnsureTable(ctx context.Context, name, ddl string) (bool, error)
}

// Bootstrapper lazily creates tables on first use. DDL must be written
// as CREATE TABLE IF NOT EXISTS so a race between two bootstrap
// attempts (in-process or across processes) cannot corrupt state.
type Bootstrapper struct {
	migrator Migrator
	logger   *zap.Logger

	mu      sync.Mutex
	ensured map[string]bool
}

func NewBootstrapper(migrator Migrator, logger ...*zap.Logger) *Bootstrapper {
	l := zap.L().Named("schema")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schema")
	}
	return &Bootstrapper{
		migrator: migrator,
		logger:   l,
		ensured:  make(map[string]bool),
	}
}

func (b *Bootstrapper) EnsureTable(ctx context.Context, name, ddl string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ensured[name] {
		return false, nil
	}

	if b.migrator.HasTable(ctx, name) {
		b.ensured[name] = true
		return false, nil
	}

	if err := b.migrator.Exec(ctx, ddl); err != nil {
		b.logger.Error("create table failed", zap.String("table", name), zap.Error(err))
		return false, apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to prepare storage", 500)
	}

	b.ensured[name] = true
	b.logger.Info("table created", zap.String("table", name))
	return true, nil
}

type gormMigrator struct {
	db *gorm.DB
}

func NewGormMigrator(db *gorm.DB) Migrator {
	return &gormMigrator{db: db}
}

func (m *gormMigrator) HasTable(ctx context.Context, name string) bool {
	return m.db.WithContext(ctx).Migrator().HasTable(name)
}

func (m *gormMigrator) Exec(ctx context.Context, ddl string) error {
	return m.db.WithContext(ctx).Exec(ddl).Error
}
