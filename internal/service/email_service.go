package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/atlasmedia/atlas-backend/internal/models"
)

// ==============================================
// EMAIL SENDER
// ==============================================

// EmailSender is the outbound mail capability. The issuer's success path
// must not depend on any concrete transport, so tests swap in a double.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender sends transactional mail over SMTP with STARTTLS
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	message := buildMessage(s.from, to, subject, body)
	addr := net.JoinHostPort(s.host, fmt.Sprintf("%d", s.port))

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return fmt.Errorf("SMTP auth failed: %w", err)
			}
		}
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := writer.Write([]byte(message)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}

	return writer.Close()
}

func buildMessage(from, to, subject, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}
	return strings.Join(headers, "\r\n")
}

// ==============================================
// EMAIL TEMPLATES
// ==============================================

// ResetOTPEmail renders the password reset OTP email
func ResetOTPEmail(code string) (subject string, body string) {
	subject = "Reset Your Password - Atlas Media"
	body = fmt.Sprintf(`Hello,

We received a request to reset your admin password.

Your password reset code is: %s

This code will expire in %d minutes.

If you didn't request this, please ignore this email and your password will remain unchanged.

Best regards,
Atlas Media Team
`, code, models.OTPExpiryMinutes)

	return subject, body
}

// InquiryNotificationEmail renders the internal notification for a new
// contact form submission
func InquiryNotificationEmail(name, email, subject, message string) (string, string) {
	mailSubject := "New Inquiry - Atlas Media"
	body := fmt.Sprintf(`A new inquiry has been submitted.

Name: %s
Email: %s
Subject: %s

%s
`, name, email, subject, message)

	return mailSubject, body
}
