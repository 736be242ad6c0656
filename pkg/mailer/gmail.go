package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 465 // implicit TLS submission
)

// Gmail relays contact form submissions through the Gmail SMTP endpoint
// using an app password. One message per call, no retries.
type Gmail struct {
	user   string
	to     string
	dialer *gomail.Dialer
	logger *zap.Logger
}

// NewGmail creates a Gmail mailer. The recipient defaults to the sending
// account when to is empty.
func NewGmail(user, appPassword, to string, logger *zap.Logger) *Gmail {
	if logger == nil {
		logger = zap.NewNop()
	}
	if to == "" {
		to = user
	}
	d := gomail.NewDialer(gmailHost, gmailPort, user, appPassword)
	d.SSL = true
	return &Gmail{user: user, to: to, dialer: d, logger: logger}
}

// SendContact composes and delivers a plain-text contact notification.
func (g *Gmail) SendContact(name, email, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", g.user)
	m.SetHeader("To", g.to)
	m.SetHeader("Subject", fmt.Sprintf("New Contact from %s", name))
	m.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", name, email, message))

	if err := g.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	g.logger.Info("contact mail sent", zap.String("to", g.to))
	return nil
}
