package notification

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Mailer is the external transport. The SMTP implementation below is
// the production one; tests substitute fakes.
//
//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(to, subject, body string) (messageID string, err error)
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type smtpMailer struct {
	dialer *gomail.Dialer
	sender string
}

func NewSMTPMailer(cfg SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender,
	}
}

func (m *smtpMailer) Send(to, subject, body string) (string, error) {
	// SMTP has no provider-side id, so the Message-ID header doubles as
	// the audit reference.
	messageID := fmt.Sprintf("<%s@nexsphere.in>", uuid.New().String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", messageID)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return "", err
	}

	return messageID, nil
}
