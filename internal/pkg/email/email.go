package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html/template"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/webssis/ssis/internal/pkg/apperrors"
)

// WelcomeSubject is the subject line of the registration email
const WelcomeSubject = "Account Registration Successful"

// ErrNotConfigured is returned when no relay host is set. It also matches
// apperrors.ErrNotificationFailed, so callers report the email as not sent.
var ErrNotConfigured = errors.New("SMTP host not configured")

// EmailService defines the interface for email operations
type EmailService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, toName string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool // STARTTLS after connecting
	UseSSL    bool // implicit TLS from the first byte
	Timeout   time.Duration
}

// EmailServiceImpl implements EmailService over net/smtp
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) *EmailServiceImpl {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

var welcomeHTML = template.Must(template.New("welcome").Parse(`<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">Welcome to Web SSIS!</h2>
		<p>Hello {{.}},</p>
		<p>You have registered your account successfully. You can now sign in and manage colleges, programs and students.</p>
		<p>Best regards,<br>The Web SSIS Team</p>
	</div>
</body>
</html>
`))

func welcomeText(toName string) string {
	return fmt.Sprintf("You have registered your account successfully. Welcome to Web SSIS, %s!\r\n", toName)
}

// SendWelcomeEmail sends the registration confirmation to toEmail. With no
// relay host configured nothing is sent and ErrNotConfigured is returned.
func (s *EmailServiceImpl) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	if s.config.Host == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("toName", toName).
			Msg("SMTP host not configured - welcome email not sent.")
		return fmt.Errorf("%w: %w", apperrors.ErrNotificationFailed, ErrNotConfigured)
	}

	if _, err := mail.ParseAddress(toEmail); err != nil {
		return fmt.Errorf("%w: invalid recipient %q: %v", apperrors.ErrNotificationFailed, toEmail, err)
	}

	msg, err := s.buildWelcomeMessage(toEmail, toName, time.Now())
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNotificationFailed, err)
	}

	if err := s.send(ctx, toEmail, msg); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send welcome email")
		return fmt.Errorf("%w: %v", apperrors.ErrNotificationFailed, err)
	}

	s.logger.Info().Str("toEmail", toEmail).Msg("Welcome email sent")
	return nil
}

// buildWelcomeMessage renders a multipart/alternative message with a plain
// text part followed by the HTML part.
func (s *EmailServiceImpl) buildWelcomeMessage(toEmail, toName string, now time.Time) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	textPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(welcomeText(toName))); err != nil {
		return nil, err
	}

	htmlPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if err := welcomeHTML.Execute(htmlPart, toName); err != nil {
		return nil, fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	from := mail.Address{Name: s.config.FromName, Address: s.config.FromEmail}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from.String())
	fmt.Fprintf(&msg, "To: %s\r\n", toEmail)
	fmt.Fprintf(&msg, "Subject: %s\r\n", WelcomeSubject)
	fmt.Fprintf(&msg, "Date: %s\r\n", now.Format(time.RFC1123Z))
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return msg.Bytes(), nil
}

func (s *EmailServiceImpl) dial(ctx context.Context, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: s.config.Timeout}
	if s.config.UseSSL {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: s.config.Host},
		}
		return tlsDialer.DialContext(ctx, "tcp", addr)
	}
	return dialer.DialContext(ctx, "tcp", addr)
}

// send runs one SMTP conversation. The connection deadline follows ctx, or
// the configured timeout when ctx has none.
func (s *EmailServiceImpl) send(ctx context.Context, toEmail string, msg []byte) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	conn, err := s.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else if s.config.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.config.Timeout))
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if s.config.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return fmt.Errorf("SMTP server %s does not support STARTTLS", addr)
		}
		if err := client.StartTLS(&tls.Config{ServerName: s.config.Host}); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	if s.config.Username != "" {
		auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}
