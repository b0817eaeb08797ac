package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nitinco/nexsphere/internal/shared/contextutil"
	"github.com/nitinco/nexsphere/internal/shared/schema"
)

// Dispatcher is the narrow interface other services depend on.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) SendResult
}

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Dispatcher
	GetAll(ctx context.Context) ([]EmailLogResponse, error)
}

type service struct {
	schema schema.EnsureTabler
	repo   Repository
	mailer Mailer
	logger *zap.Logger
}

// NewService builds the dispatcher. A nil mailer is valid (SMTP not
// configured): every attempt is then recorded as failed and the caller
// proceeds as usual.
func NewService(sch schema.EnsureTabler, repo Repository, mailer Mailer, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{schema: sch, repo: repo, mailer: mailer, logger: l}
}

func (s *service) Send(ctx context.Context, msg Message) SendResult {
	rid := contextutil.GetRequestID(ctx)

	result := SendResult{}
	if s.mailer == nil {
		result.Error = "mail transport not configured"
	} else {
		messageID, err := s.mailer.Send(msg.To, msg.Subject, msg.Body)
		if err != nil {
			result.Error = err.Error()
			s.logger.Warn("mail send failed",
				zap.String("request_id", rid),
				zap.String("recipient", msg.To),
				zap.String("kind", msg.Kind),
				zap.Error(err),
			)
		} else {
			result.Sent = true
			result.MessageID = messageID
		}
	}

	// Audit row is written for every attempt, success or failure. If
	// even that fails we log locally and move on: audit trouble must
	// never surface as a user-facing error.
	if err := s.appendLog(ctx, msg, result); err != nil {
		s.logger.Error("email audit log write failed",
			zap.String("request_id", rid),
			zap.String("recipient", msg.To),
			zap.Error(err),
		)
	}

	if result.Sent {
		s.logger.Info("notification sent",
			zap.String("request_id", rid),
			zap.String("recipient", msg.To),
			zap.String("kind", msg.Kind),
		)
	}

	return result
}

func (s *service) appendLog(ctx context.Context, msg Message, result SendResult) error {
	if _, err := s.schema.EnsureTable(ctx, EmailLogTableName, EmailLogTableDDL); err != nil {
		return err
	}

	status := StatusFailed
	if result.Sent {
		status = StatusSent
	}

	return s.repo.Create(ctx, &EmailLog{
		ID:                uuid.New(),
		Recipient:         msg.To,
		RecipientKind:     msg.RecipientKind,
		Subject:           msg.Subject,
		Body:              msg.Body,
		Kind:              msg.Kind,
		Status:            status,
		ErrorText:         result.Error,
		SentBy:            msg.SentBy,
		ProviderMessageID: result.MessageID,
	})
}

func (s *service) GetAll(ctx context.Context) ([]EmailLogResponse, error) {
	if _, err := s.schema.EnsureTable(ctx, EmailLogTableName, EmailLogTableDDL); err != nil {
		return nil, err
	}

	logs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get email logs failed", zap.Error(err))
		return nil, err
	}

	res := make([]EmailLogResponse, len(logs))
	for i, l := range logs {
		res[i] = EmailLogResponse{
			ID:                l.ID.String(),
			Recipient:         l.Recipient,
			RecipientKind:     l.RecipientKind,
			Subject:           l.Subject,
			Kind:              l.Kind,
			Status:            l.Status,
			ErrorText:         l.ErrorText,
			SentBy:            l.SentBy,
			ProviderMessageID: l.ProviderMessageID,
			CreatedAt:         l.CreatedAt.Format(time.RFC3339),
		}
	}
	return res, nil
}

// NewEmployeeWelcome builds the registration acknowledgement mail.
func NewEmployeeWelcome(to, name, company string) Message {
	return Message{
		To:            to,
		Subject:       "Welcome to Nexsphere Global",
		Kind:          KindEmployeeWelcome,
		RecipientKind: RecipientEmployee,
		Body: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your employee registration with %s has been received. "+
				"Our HR team will reach out with the next steps.</p>"+
				"<p>— Nexsphere Global</p>",
			name, company,
		),
	}
}

// NewEmployerConfirmation builds the payment confirmation mail.
func NewEmployerConfirmation(to, companyName, orderID string, amount int64, currency string) Message {
	return Message{
		To:            to,
		Subject:       "Employer registration confirmed - Nexsphere Global",
		Kind:          KindEmployerConfirmation,
		RecipientKind: RecipientEmployer,
		Body: fmt.Sprintf(
			"<p>Hello %s,</p><p>We have received your payment of %.2f %s "+
				"(order %s). Your employer account is now active.</p>"+
				"<p>— Nexsphere Global</p>",
			companyName, float64(amount)/100, currency, orderID,
		),
	}
}
