// Package email delivers reminder and request notifications over SMTP.
package email

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/shared/config"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// ConfigFromShared adapts the email section of the application config.
func ConfigFromShared(cfg config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPDispatcher struct {
	config SMTPConfig
	dialer sender
	logger logger.Interface
}

var _ notification.Dispatcher = (*SMTPDispatcher)(nil)

func NewSMTPDispatcher(cfg SMTPConfig, log logger.Interface) *SMTPDispatcher {
	return &SMTPDispatcher{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: log,
	}
}

// Send returns once the SMTP server accepted the message or ctx ends. When ctx
// ends first the error wraps notification.ErrDeliveryUnconfirmed: the send keeps
// running in the background and may still deliver the message.
func (s *SMTPDispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("recipient is required")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	m := s.buildMessage(to, subject, htmlBody)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Warnw("smtp send failed", "to", to, "subject", subject, "error", err)
			return fmt.Errorf("failed to send email: %w", err)
		}
		s.logger.Debugw("email sent", "to", to, "subject", subject)
		return nil
	case <-ctx.Done():
		go s.logLateResult(done, to, subject)
		return fmt.Errorf("%w: %w", notification.ErrDeliveryUnconfirmed, ctx.Err())
	}
}

func (s *SMTPDispatcher) logLateResult(done <-chan error, to, subject string) {
	if err := <-done; err != nil {
		s.logger.Warnw("smtp send failed after timeout", "to", to, "subject", subject, "error", err)
		return
	}
	s.logger.Infow("email delivered after timeout", "to", to, "subject", subject)
}

func (s *SMTPDispatcher) buildMessage(to, subject, htmlBody string) *gomail.Message {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", PlainText(htmlBody))
	m.AddAlternative("text/html", htmlBody)
	return m
}

var (
	strictPolicy = bluemonday.StrictPolicy()
	blockTags    = regexp.MustCompile(`(?i)<\s*(br\s*/?|/p|/h[1-6]|/li|/tr|/div)\s*>`)
	blankLines   = regexp.MustCompile(`\n[ \t]*\n(\s*\n)+`)
)

// PlainText derives the text/plain alternative from an HTML body.
func PlainText(htmlBody string) string {
	withBreaks := blockTags.ReplaceAllString(htmlBody, "$0\n")
	text := html.UnescapeString(strictPolicy.Sanitize(withBreaks))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
}

// LogDispatcher stands in for SMTP when email is disabled.
type LogDispatcher struct {
	logger logger.Interface
}

var _ notification.Dispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(log logger.Interface) *LogDispatcher {
	return &LogDispatcher{logger: log}
}

func (d *LogDispatcher) Send(_ context.Context, to, subject, htmlBody string) error {
	d.logger.Infow("email disabled, message not sent", "to", to, "subject", subject, "bytes", len(htmlBody))
	return nil
}

// NewDispatcher picks SMTP or the logging stand-in from configuration.
func NewDispatcher(cfg config.EmailConfig, log logger.Interface) notification.Dispatcher {
	if !cfg.Enabled {
		return NewLogDispatcher(log)
	}
	return NewSMTPDispatcher(ConfigFromShared(cfg), log)
}
