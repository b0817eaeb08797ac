package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	employeeerrors "github.com/nitinco/nexsphere/internal/employee/errors"
	"github.com/nitinco/nexsphere/internal/events"
	"github.com/nitinco/nexsphere/internal/messaging/kafka"
	"github.com/nitinco/nexsphere/internal/notification"
	"github.com/nitinco/nexsphere/internal/shared/contextutil"
	"github.com/nitinco/nexsphere/internal/shared/schema"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterEmployeeRequest) (RegisterEmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
}

type service struct {
	db       *sql.DB
	schema   schema.EnsureTabler
	repo     Repository
	outbox   kafka.OutboxRepository
	notifier notification.Dispatcher
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	sch schema.EnsureTabler,
	repo Repository,
	outbox kafka.OutboxRepository,
	notifier notification.Dispatcher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		schema:   sch,
		repo:     repo,
		outbox:   outbox,
		notifier: notifier,
		logger:   l,
	}
}

func (s *service) Register(
	ctx context.Context,
	req RegisterEmployeeRequest,
) (RegisterEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		s.logger.Warn("register employee invalid joining_date",
			zap.String("joining_date", req.JoiningDate),
			zap.Error(err),
		)
		return RegisterEmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	if _, err := s.schema.EnsureTable(ctx, TableName, TableDDL); err != nil {
		return RegisterEmployeeResponse{}, err
	}
	if s.outbox != nil {
		if _, err := s.schema.EnsureTable(ctx, kafka.OutboxTableName, kafka.OutboxTableDDL); err != nil {
			return RegisterEmployeeResponse{}, err
		}
	}

	empl := &Employee{
		ID:             uuid.New(),
		Name:           req.Name,
		ContactNo:      req.ContactNo,
		AlternateNo:    req.AlternateNo,
		Email:          req.Email,
		JoiningCompany: req.JoiningCompany,
		JoiningDate:    joiningDate,
		Position:       req.Position,
		Status:         StatusActive,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterEmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("register employee persist failed", zap.Error(err))
		return RegisterEmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeRegisteredEvent{
			EventType:  "employee_registered",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Email:      empl.Email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return RegisterEmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeRegisteredTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("register employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return RegisterEmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterEmployeeResponse{}, err
	}

	// Welcome mail is best effort: the registration is already durable.
	result := s.notifier.Send(ctx, notification.NewEmployeeWelcome(empl.Email, empl.Name, empl.JoiningCompany))

	s.logger.Info("register employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.Bool("email_sent", result.Sent),
	)

	return RegisterEmployeeResponse{
		EmployeeID: empl.ID.String(),
		EmailSent:  result.Sent,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	if _, err := s.schema.EnsureTable(ctx, TableName, TableDDL); err != nil {
		return nil, err
	}

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		Name:           empl.Name,
		ContactNo:      empl.ContactNo,
		AlternateNo:    empl.AlternateNo,
		Email:          empl.Email,
		JoiningCompany: empl.JoiningCompany,
		JoiningDate:    empl.JoiningDate.Format("2006-01-02"),
		Position:       empl.Position,
		Status:         empl.Status,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
