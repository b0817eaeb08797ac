package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nitinco/nexsphere/internal/hrauth"
	"github.com/nitinco/nexsphere/internal/notification"
	"github.com/nitinco/nexsphere/internal/payment"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// Config is assembled once from the environment and injected into the
// services; nothing reads os.Getenv past this point. Optional features
// (payments, mail, cache, events) degrade gracefully when their
// variables are absent.
type Config struct {
	Env  string
	Port string

	DB        DatabaseConfig
	JWTSecret []byte

	RedisAddr   string
	KafkaBroker string

	Razorpay payment.Config
	SMTP     notification.SMTPConfig

	HRDefaultEmail    string
	HRDefaultPassword string
	HRDefaultName     string
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Env:  getenv("APP_ENV", "development"),
		Port: getenv("PORT", "3000"),
		DB: DatabaseConfig{
			Host:     getenv("DB_HOST", "localhost"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "nexsphere"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		Razorpay: payment.Config{
			KeyID:         os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
			WebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
		},
		SMTP: notification.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 465),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			Sender:   getenv("SMTP_SENDER", "noreply@nexsphere.in"),
		},
		HRDefaultEmail:    getenv("HR_DEFAULT_EMAIL", "hr@nexsphere.in"),
		HRDefaultPassword: getenv("HR_DEFAULT_PASSWORD", "ChangeMe@123"),
		HRDefaultName:     getenv("HR_DEFAULT_NAME", "HR Admin"),
	}

	if cfg.DB.User == "" {
		return Config{}, fmt.Errorf("DB_USER is required")
	}
	if len(cfg.JWTSecret) == 0 {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func (c Config) HRAuth() hrauth.Config {
	return hrauth.Config{
		JWTSecret:       c.JWTSecret,
		DefaultEmail:    c.HRDefaultEmail,
		DefaultPassword: c.HRDefaultPassword,
		DefaultName:     c.HRDefaultName,
	}
}

func (c Config) PaymentsEnabled() bool {
	return c.Razorpay.KeyID != "" && c.Razorpay.KeySecret != ""
}

func (c Config) MailEnabled() bool {
	return c.SMTP.Host != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
