package app

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nitinco/nexsphere/internal/dashboard"
	"github.com/nitinco/nexsphere/internal/employee"
	"github.com/nitinco/nexsphere/internal/employer"
	"github.com/nitinco/nexsphere/internal/hrauth"
	"github.com/nitinco/nexsphere/internal/messaging/kafka"
	"github.com/nitinco/nexsphere/internal/middleware"
	"github.com/nitinco/nexsphere/internal/notification"
	"github.com/nitinco/nexsphere/internal/payment"
	"github.com/nitinco/nexsphere/internal/shared/schema"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	bootstrapper := schema.NewBootstrapper(schema.NewGormMigrator(gormDB))

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	employerRepo := employer.NewRepository(gormDB)
	paymentRepo := payment.NewRepository(gormDB)
	hrauthRepo := hrauth.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)

	var outboxRepo kafka.OutboxRepository
	if cfg.KafkaBroker != "" {
		outboxRepo = kafka.NewOutboxRepository(db)
	}

	// --- External collaborators ---
	var gateway payment.Gateway
	if cfg.PaymentsEnabled() {
		gateway = payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	}

	var mailer notification.Mailer
	if cfg.MailEnabled() {
		mailer = notification.NewSMTPMailer(cfg.SMTP)
	}

	// --- Services ---
	notificationService := notification.NewService(bootstrapper, notificationRepo, mailer)
	employeeService := employee.NewService(db, bootstrapper, employeeRepo, outboxRepo, notificationService)
	employerService := employer.NewService(bootstrapper, employerRepo)
	paymentService := payment.NewService(
		db, bootstrapper, paymentRepo, employerRepo,
		gateway, notificationService, outboxRepo, cfg.Razorpay,
	)
	hrauthService := hrauth.NewService(bootstrapper, hrauthRepo, cfg.HRAuth())
	dashboardService := dashboard.NewService(dashboardRepo, rdb)

	// Seed the default HR account up front so the portal is usable
	// straight after first deploy.
	if err := hrauthService.EnsureSeed(context.Background()); err != nil {
		return err
	}

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	employerHandler := employer.NewHandler(employerService)
	paymentHandler := payment.NewHandler(paymentService)
	hrauthHandler := hrauth.NewHandler(hrauthService)
	notificationHandler := notification.NewHandler(notificationService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes ---
	api := router.Group("/api")
	api.Use(middleware.ContextLogger(logger))
	{
		hrauth.RegisterRoutes(api, hrauthHandler)
		employee.RegisterRoutes(api, employeeHandler, cfg.JWTSecret)
		employer.RegisterRoutes(api, employerHandler, cfg.JWTSecret)
		payment.RegisterRoutes(api, paymentHandler, cfg.JWTSecret)
		notification.RegisterRoutes(api, notificationHandler, cfg.JWTSecret)
		dashboard.RegisterRoutes(api, dashboardHandler, cfg.JWTSecret)
	}

	return nil
}
