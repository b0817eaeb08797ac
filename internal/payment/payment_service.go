package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nitinco/nexsphere/internal/employer"
	"github.com/nitinco/nexsphere/internal/events"
	"github.com/nitinco/nexsphere/internal/messaging/kafka"
	"github.com/nitinco/nexsphere/internal/notification"
	paymenterrors "github.com/nitinco/nexsphere/internal/payment/errors"
	"github.com/nitinco/nexsphere/internal/shared/contextutil"
	"github.com/nitinco/nexsphere/internal/shared/schema"
)

const webhookEventCaptured = "payment.captured"

// Config holds the provider credentials. KeyID is shared with the
// checkout client; the secrets never leave the server.
type Config struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

//go:generate mockgen -source=payment_service.go -destination=mock/payment_service_mock.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error)
	VerifyAndRegister(ctx context.Context, req RegisterEmployerRequest) (RegisterEmployerResponse, error)
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
	RecordManualPayment(ctx context.Context, req ManualPaymentRequest) (ManualPaymentResponse, error)
	GetAll(ctx context.Context) ([]PaymentResponse, error)
}

type service struct {
	db        *sql.DB
	schema    schema.EnsureTabler
	repo      Repository
	employers employer.Repository
	gateway   Gateway
	notifier  notification.Dispatcher
	outbox    kafka.OutboxRepository
	cfg       Config
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	sch schema.EnsureTabler,
	repo Repository,
	employers employer.Repository,
	gateway Gateway,
	notifier notification.Dispatcher,
	outbox kafka.OutboxRepository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}
	return &service{
		db:        db,
		schema:    sch,
		repo:      repo,
		employers: employers,
		gateway:   gateway,
		notifier:  notifier,
		outbox:    outbox,
		cfg:       cfg,
		logger:    l,
	}
}

func (s *service) CreateOrder(
	ctx context.Context,
	req CreateOrderRequest,
) (CreateOrderResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create order requested",
		zap.String("request_id", rid),
		zap.String("business_email", req.BusinessEmail),
	)

	if s.gateway == nil {
		return CreateOrderResponse{}, paymenterrors.ErrGatewayNotConfigured
	}

	if _, err := s.schema.EnsureTable(ctx, TableName, TableDDL); err != nil {
		return CreateOrderResponse{}, err
	}

	// Provider call happens outside any DB transaction: no pooled
	// connection is held while waiting on the gateway.
	receipt := "rcpt_" + uuid.NewString()
	order, err := s.gateway.CreateOrder(ctx, RegistrationFeeAmount, RegistrationFeeCurrency, receipt, map[string]interface{}{
		"company_name":   req.CompanyName,
		"business_email": req.BusinessEmail,
	})
	if err != nil {
		s.logger.Error("gateway create order failed", zap.String("request_id", rid), zap.Error(err))
		return CreateOrderResponse{}, paymenterrors.ErrGatewayUnavailable
	}

	p := &Payment{
		ID:             uuid.New(),
		OrderID:        order.ID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		Status:         StatusCreated,
		ReceiptID:      receipt,
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		BusinessEmail:  req.BusinessEmail,
		BusinessNumber: req.BusinessNumber,
		Location:       req.Location,
		Designation:    req.Designation,
		CompanySize:    req.CompanySize,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("persist payment order failed",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return CreateOrderResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("payment order created",
		zap.String("request_id", rid),
		zap.String("order_id", order.ID),
		zap.Int64("amount", order.Amount),
	)

	return CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      s.cfg.KeyID,
	}, nil
}

// VerifyAndRegister is the authoritative client-return path: signature
// check, then payment-paid + employer-insert + backlink in one
// transaction so a crash cannot leave a paid Payment half-linked.
func (s *service) VerifyAndRegister(
	ctx context.Context,
	req RegisterEmployerRequest,
) (RegisterEmployerResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !VerifyClientSignature(s.cfg.KeySecret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		s.logger.Warn("payment signature mismatch",
			zap.String("request_id", rid),
			zap.String("order_id", req.RazorpayOrderID),
		)
		return RegisterEmployerResponse{}, paymenterrors.ErrInvalidSignature
	}

	if _, err := s.schema.EnsureTable(ctx, TableName, TableDDL); err != nil {
		return RegisterEmployerResponse{}, err
	}

	p, err := s.repo.FindByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RegisterEmployerResponse{}, paymenterrors.ErrPaymentNotFound
		}
		s.logger.Error("find payment by order failed", zap.Error(err))
		return RegisterEmployerResponse{}, err
	}

	if p.EmployerID != nil {
		return RegisterEmployerResponse{}, paymenterrors.ErrPaymentAlreadyUsed
	}

	if _, err := s.schema.EnsureTable(ctx, employer.TableName, employer.TableDDL); err != nil {
		return RegisterEmployerResponse{}, err
	}
	if s.outbox != nil {
		if _, err := s.schema.EnsureTable(ctx, kafka.OutboxTableName, kafka.OutboxTableDDL); err != nil {
			return RegisterEmployerResponse{}, err
		}
	}

	emp := &employer.Employer{
		ID:             uuid.New(),
		Name:           fallback(req.Name, p.Name),
		CompanyName:    fallback(req.CompanyName, p.CompanyName),
		BusinessEmail:  fallback(req.BusinessEmail, p.BusinessEmail),
		BusinessNumber: fallback(req.BusinessNumber, p.BusinessNumber),
		Location:       fallback(req.Location, p.Location),
		Designation:    fallback(req.Designation, p.Designation),
		CompanySize:    req.CompanySize,
		PaymentID:      &p.ID,
		Status:         employer.StatusActive,
	}
	if emp.CompanySize < 1 {
		emp.CompanySize = p.CompanySize
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("verify payment begin tx failed", zap.Error(err))
		return RegisterEmployerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.MarkPaid(ctx, p.ID, req.RazorpayPaymentID, req.RazorpaySignature, MethodRazorpay); err != nil {
		s.logger.Error("mark payment paid failed", zap.String("order_id", p.OrderID), zap.Error(err))
		return RegisterEmployerResponse{}, err
	}

	if err := s.employers.WithTx(tx).Create(ctx, emp); err != nil {
		s.logger.Error("create employer failed",
			zap.String("order_id", p.OrderID),
			zap.Error(err),
		)
		return RegisterEmployerResponse{}, employer.MapRepositoryError(err)
	}

	if err := qtx.LinkEmployer(ctx, p.ID, emp.ID); err != nil {
		s.logger.Error("link employer to payment failed", zap.Error(err))
		return RegisterEmployerResponse{}, err
	}

	if s.outbox != nil {
		event := events.EmployerRegisteredEvent{
			EventType:     "employer_registered",
			RequestID:     rid,
			EmployerID:    emp.ID.String(),
			PaymentID:     p.ID.String(),
			BusinessEmail: emp.BusinessEmail,
			OccurredAt:    time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return RegisterEmployerResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employer",
			AggregateID:   emp.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployerRegisteredTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("employer outbox persist failed", zap.Error(err))
			return RegisterEmployerResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("verify payment commit failed", zap.Error(err))
		return RegisterEmployerResponse{}, err
	}

	result := s.notifier.Send(ctx, notification.NewEmployerConfirmation(
		emp.BusinessEmail, emp.CompanyName, p.OrderID, p.Amount, p.Currency,
	))

	s.logger.Info("employer registered after payment",
		zap.String("request_id", rid),
		zap.String("order_id", p.OrderID),
		zap.String("employer_id", emp.ID.String()),
		zap.Bool("email_sent", result.Sent),
	)

	return RegisterEmployerResponse{
		EmployerID: emp.ID.String(),
		PaymentID:  p.ID.String(),
		EmailSent:  result.Sent,
	}, nil
}

// HandleWebhook reconciles payment status for orders whose registration
// call may never have completed. It only flips Payment rows to paid;
// Employer creation stays on the client-return path, so a paid Payment
// with no linked Employer is a tolerated intermediate state.
func (s *service) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if s.cfg.WebhookSecret == "" || !VerifyWebhookSignature(s.cfg.WebhookSecret, rawBody, signature) {
		s.logger.Warn("webhook signature mismatch")
		return paymenterrors.ErrInvalidWebhookSignature
	}

	var event WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	if event.Event != webhookEventCaptured {
		s.logger.Debug("webhook event ignored", zap.String("event", event.Event))
		return nil
	}

	if _, err := s.schema.EnsureTable(ctx, TableName, TableDDL); err != nil {
		return err
	}

	entity := event.Payload.Payment.Entity
	method := entity.Method
	if method == "" {
		method = MethodRazorpay
	}

	rows, err := s.repo.MarkCaptured(ctx, entity.ID, entity.OrderID, method)
	if err != nil {
		s.logger.Error("webhook mark captured failed",
			zap.String("provider_payment_id", entity.ID),
			zap.Error(err),
		)
		return err
	}

	if rows == 0 {
		// No matching order row; nothing to reconcile yet. The event is
		// acknowledged so the provider stops retrying.
		s.logger.Warn("webhook matched no payment",
			zap.String("provider_payment_id", entity.ID),
			zap.String("order_id", entity.OrderID),
		)
		return nil
	}

	s.logger.Info("payment reconciled via webhook",
		zap.String("provider_payment_id", entity.ID),
		zap.String("order_id", entity.OrderID),
	)
	return nil
}

func (s *service) RecordManualPayment(
	ctx context.Context,
	req ManualPaymentRequest,
) (ManualPaymentResponse, error) {
	if _, err := s.schema.EnsureTable(ctx, TableName, TableDDL); err != nil {
		return ManualPaymentResponse{}, err
	}

	// Synthetic reference; a human reconciles it later. This path never
	// transitions to paid on its own.
	reference := "manual_" + uuid.NewString()

	p := &Payment{
		ID:             uuid.New(),
		OrderID:        reference,
		Amount:         RegistrationFeeAmount,
		Currency:       RegistrationFeeCurrency,
		Status:         StatusPendingVerification,
		Method:         MethodManual,
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		BusinessEmail:  req.BusinessEmail,
		BusinessNumber: req.BusinessNumber,
		Location:       req.Location,
		Designation:    req.Designation,
		CompanySize:    req.CompanySize,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("persist manual payment failed", zap.Error(err))
		return ManualPaymentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("manual payment recorded",
		zap.String("reference", reference),
		zap.String("business_email", req.BusinessEmail),
	)

	return ManualPaymentResponse{
		ReferenceID: reference,
		Status:      StatusPendingVerification,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]PaymentResponse, error) {
	if _, err := s.schema.EnsureTable(ctx, TableName, TableDDL); err != nil {
		return nil, err
	}

	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all payments failed", zap.Error(err))
		return nil, err
	}

	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func mapToResponse(p Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:                p.ID.String(),
		OrderID:           p.OrderID,
		ProviderPaymentID: p.ProviderPaymentID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            p.Status,
		Method:            p.Method,
		CompanyName:       p.CompanyName,
		BusinessEmail:     p.BusinessEmail,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
	if p.EmployerID != nil {
		resp.EmployerID = p.EmployerID.String()
	}
	if p.PaidAt != nil {
		resp.PaidAt = p.PaidAt.Format(time.RFC3339)
	}
	return resp
}

func fallback(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	return secondary
}
