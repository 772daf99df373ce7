package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/myvegiz/backend/internal/domain/content"
	"go.uber.org/zap"
)

// SMTPMailer sends mail over SMTP using the settings stored in the
// database. It implements content.Mailer.
type SMTPMailer struct {
	logger *zap.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{logger: logger}
}

// Send delivers a plain-text message. Encryption "ssl" opens a TLS
// connection outright; anything else connects in the clear and upgrades
// with STARTTLS when the server offers it.
func (m *SMTPMailer) Send(ctx context.Context, settings *content.EmailSetting, to, subject, body string) error {
	addr := net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port))
	auth := smtp.PlainAuth("", settings.Username, settings.Password, settings.Host)

	msg := buildMessage(settings, to, subject, body)

	if strings.EqualFold(settings.Encryption, "ssl") {
		return m.sendTLS(ctx, addr, auth, settings, to, msg)
	}
	return m.sendSTARTTLS(ctx, addr, auth, settings, to, msg)
}

func (m *SMTPMailer) sendSTARTTLS(ctx context.Context, addr string, auth smtp.Auth, settings *content.EmailSetting, to string, msg []byte) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, settings.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open SMTP session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: settings.Host}); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	return m.deliver(client, auth, settings, to, msg)
}

func (m *SMTPMailer) sendTLS(ctx context.Context, addr string, auth smtp.Auth, settings *content.EmailSetting, to string, msg []byte) error {
	dialer := tls.Dialer{Config: &tls.Config{ServerName: settings.Host}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, settings.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open SMTP session: %w", err)
	}
	defer client.Close()

	return m.deliver(client, auth, settings, to, msg)
}

func (m *SMTPMailer) deliver(client *smtp.Client, auth smtp.Auth, settings *content.EmailSetting, to string, msg []byte) error {
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err := client.Mail(settings.FromEmail); err != nil {
		return fmt.Errorf("MAIL FROM rejected: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO rejected: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA rejected: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	m.logger.Info("Email sent", zap.String("to", to))
	return client.Quit()
}

func buildMessage(settings *content.EmailSetting, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", settings.FromName, settings.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
