package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type Service interface {
	SendConsultationConfirmation(ctx context.Context, to, name, date string) error
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Dialer sends composed messages; *gomail.Dialer satisfies it
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpService struct {
	dialer Dialer
	from   string
}

// NewService returns an SMTP-backed service, or a no-op one when no host
// is configured.
func NewService(cfg Config) Service {
	if cfg.Host == "" {
		return NopService{}
	}
	return NewWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), cfg.From)
}

func NewWithDialer(d Dialer, from string) Service {
	return &smtpService{dialer: d, from: from}
}

func (s *smtpService) SendConsultationConfirmation(ctx context.Context, to, name, date string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your consultation request")
	m.SetBody("text/plain", ConfirmationBody(name, date))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation to %s: %w", to, err)
	}
	return nil
}

// ConfirmationBody is the plain-text confirmation message
func ConfirmationBody(name, date string) string {
	return fmt.Sprintf("Hello %s,\n\n"+
		"We received your consultation request for %s. "+
		"Its status is pending; we will contact you to confirm a time.\n\n"+
		"Smart Healthcare Platform", name, date)
}

// NopService sends nothing
type NopService struct{}

func (NopService) SendConsultationConfirmation(context.Context, string, string, string) error {
	return nil
}
