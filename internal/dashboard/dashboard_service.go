package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the reporting service. rdb may be nil; the cache is
// then skipped and every call hits the database (deduplicated by
// singleflight under concurrent load).
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	v, err, _ := s.sf.Do(statsCacheKey, func() (interface{}, error) {
		stats, err := s.repo.CollectStats(ctx)
		if err != nil {
			s.logger.Error("collect stats failed", zap.Error(err))
			return Stats{}, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(stats); err == nil {
				s.rdb.Set(ctx, statsCacheKey, data, statsCacheTTL)
			}
		}

		return stats, nil
	})
	if err != nil {
		return Stats{}, err
	}

	return v.(Stats), nil
}
