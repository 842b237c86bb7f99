package notify

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends order-completed notifications. Delivery is best-effort
// everywhere this is called; failures are logged, never propagated.
type Mailer interface {
	SendOrderCompleted(to, productName string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) SendOrderCompleted(to, productName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Order Completed")
	msg.SetBody("text/plain", fmt.Sprintf("Your order %s has been successfully placed", productName))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send order-completed mail: %w", err)
	}
	return nil
}
