package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nitinco/nexsphere/internal/shared/connection"
	"github.com/nitinco/nexsphere/internal/shared/response"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 3)
		if err != nil {
			// Cache is an optimization, not a dependency.
			logger.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	if !cfg.PaymentsEnabled() {
		logger.Warn("razorpay credentials missing, employer order creation disabled")
	}
	if !cfg.MailEnabled() {
		logger.Warn("smtp not configured, notifications will be recorded as failed")
	}

	router.GET("/api/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}, nil)
	})

	router.GET("/api/test", func(c *gin.Context) {
		dbOK := db.PingContext(c.Request.Context()) == nil
		response.Success(c, http.StatusOK, gin.H{
			"database": dbOK,
			"payments": cfg.PaymentsEnabled(),
			"mail":     cfg.MailEnabled(),
			"cache":    redisClient != nil,
			"events":   cfg.KafkaBroker != "",
		}, nil)
	})

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})

	return registerModules(router, cfg, db, gormDB, redisClient)
}
