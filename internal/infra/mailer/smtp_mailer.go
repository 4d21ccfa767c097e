// Package mailer contains the SMTP-backed email sender.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strconv"

	"quaidirect/config"
	"quaidirect/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the SMTP mailer, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
}

// noopMailer is a no-op implementation when SMTP is not configured
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.logger.Debug("[NoopMailer] Email delivery disabled, skipping",
		slog.String("to", to),
	)

	return nil
}

func (m *noopMailer) SendDropAlert(ctx context.Context, to string, alert *service.DropAlertEmail) error {
	return m.Send(ctx, to, "", "")
}

// New creates a new SMTP-backed email sender instance
func New(params Params) (service.EmailSender, error) {
	cfg := params.Config.SMTP
	if cfg == nil {
		params.Logger.Info("SMTP not configured, using no-op mailer")

		return &noopMailer{logger: params.Logger}, nil
	}

	return &smtpMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		logger:   params.Logger,
	}, nil
}

// Send delivers one HTML email to a single recipient.
func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	// net/smtp has no context support; honor cancellation before dialing
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	addr := m.host + ":" + strconv.Itoa(m.port)

	headers := map[string]string{
		"From":         m.from,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"utf-8\"",
	}

	var msg bytes.Buffer
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if m.username != "" && m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg.Bytes()); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", to)
	}

	m.logger.Debug("Email sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}

// SendDropAlert renders and delivers a drop alert email to one recipient.
func (m *smtpMailer) SendDropAlert(ctx context.Context, to string, alert *service.DropAlertEmail) error {
	subject := fmt.Sprintf("%s has a fresh catch: %s", alert.FishermanName, alert.DropTitle)

	body, err := renderDropAlert(alert)
	if err != nil {
		return errors.Wrap(err, "failed to render drop alert template")
	}

	return m.Send(ctx, to, subject, body)
}
