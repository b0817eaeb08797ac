package hrauth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	hrautherrors "github.com/nitinco/nexsphere/internal/hrauth/errors"
	"github.com/nitinco/nexsphere/internal/shared/schema"
)

const tokenLifetime = 24 * time.Hour

// dummyHash is a valid bcrypt hash compared against on unknown emails,
// so the work done (and the response) is the same whether the account
// exists or the password is wrong.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Config struct {
	JWTSecret []byte

	// Bootstrap account inserted when the credential table is freshly
	// created. A convenience for first deploys, not a security
	// practice; operators are expected to change it immediately.
	DefaultEmail    string
	DefaultPassword string
	DefaultName     string
}

//go:generate mockgen -source=hrauth_service.go -destination=mock/hrauth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	// EnsureSeed bootstraps the credential table and, when it is brand
	// new, inserts the default HR account.
	EnsureSeed(ctx context.Context) error
}

type service struct {
	schema schema.EnsureTabler
	repo   Repository
	cfg    Config
	logger *zap.Logger
}

func NewService(sch schema.EnsureTabler, repo Repository, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("hrauth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hrauth.service")
	}
	return &service{schema: sch, repo: repo, cfg: cfg, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	if err := s.EnsureSeed(ctx); err != nil {
		return LoginResponse{}, err
	}

	cred, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("credential lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		// Burn a hash comparison anyway; see dummyHash.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return LoginResponse{}, hrautherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return LoginResponse{}, hrautherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(cred)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return LoginResponse{}, hrautherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("hr login success", zap.String("email", cred.Email))

	return LoginResponse{
		Token: token,
		User: UserResponse{
			ID:    cred.ID.String(),
			Name:  cred.Name,
			Email: cred.Email,
			Role:  cred.Role,
		},
	}, nil
}

func (s *service) EnsureSeed(ctx context.Context) error {
	created, err := s.schema.EnsureTable(ctx, TableName, TableDDL)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, &Credential{
		ID:           uuid.New(),
		Name:         s.cfg.DefaultName,
		Email:        s.cfg.DefaultEmail,
		PasswordHash: string(hash),
		Role:         RoleHR,
	}); err != nil {
		return err
	}

	s.logger.Warn("seeded default HR account; change its password",
		zap.String("email", s.cfg.DefaultEmail),
	)
	return nil
}

func (s *service) generateToken(cred *Credential) (string, error) {
	claims := jwt.MapClaims{
		"user_id": cred.ID.String(),
		"email":   cred.Email,
		"role":    cred.Role,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}
