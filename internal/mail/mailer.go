// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/canonical/diagram-service/internal/logging"
	"github.com/canonical/diagram-service/internal/monitoring"
	"github.com/canonical/diagram-service/internal/tracing"
)

var _ MailerInterface = (*Mailer)(nil)

type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FrontendURL string
}

type Mailer struct {
	config Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMailer(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Mailer {
	return &Mailer{
		config:  config,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Mailer) SendInvitation(ctx context.Context, toEmail, diagramName, inviterEmail, invitationID string) error {
	_, span := m.tracer.Start(ctx, "mail.Mailer.SendInvitation")
	defer span.End()

	link := fmt.Sprintf("%s/invitations/%s", strings.TrimRight(m.config.FrontendURL, "/"), invitationID)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.config.From)
	fmt.Fprintf(&b, "To: %s\r\n", toEmail)
	fmt.Fprintf(&b, "Subject: You have been invited to collaborate on %q\r\n", diagramName)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "%s invited you to collaborate on the diagram %q.\r\n\r\n", inviterEmail, diagramName)
	fmt.Fprintf(&b, "Review the invitation at %s\r\n", link)

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{toEmail}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	m.logger.Debugf("invitation email sent to %s for diagram %s", toEmail, diagramName)
	return nil
}

// NoopMailer drops invitations silently; used when SMTP is not configured.
type NoopMailer struct{}

func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

func (m *NoopMailer) SendInvitation(context.Context, string, string, string, string) error {
	return nil
}
