// Package mailer is the outbound notification gateway. A send is a single
// attempt with a boolean outcome; there is no retry policy, and callers are
// responsible for surfacing failure to the operator.
package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/hariyalifarms/hariyali-backend-go/config"
	"github.com/hariyalifarms/hariyali-backend-go/logger"
)

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// Sender reports success or failure instead of returning an error so that
// a failed dispatch can never be confused with a failed business operation.
type Sender interface {
	Send(msg Message) bool
}

type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{
		host:     config.GetEnv("SMTP_HOST", "localhost"),
		port:     config.GetEnvInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USER", ""),
		password: config.GetEnv("SMTP_PASSWORD", ""),
		from:     config.GetEnv("SMTP_FROM", "no-reply@hariyalifarms.in"),
	}
}

func (s *SMTPSender) Send(msg Message) bool {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		logger.Get().Error().Err(err).Str("to", msg.To).Str("subject", msg.Subject).Msg("email dispatch failed")
		return false
	}
	return true
}
