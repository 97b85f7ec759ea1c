package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/url"
	"strings"
)

// PasswordResetMailer delivers reset links over SMTP. Accounts carry no
// email address, so mail goes to the configured recipient inbox, where
// staff pick up their links.
type PasswordResetMailer struct {
	host        string
	port        string
	username    string
	password    string
	from        string
	to          string
	frontendURL string
}

func NewPasswordResetMailer(host, port, username, password, from, to, frontendURL string) *PasswordResetMailer {
	return &PasswordResetMailer{
		host:        strings.TrimSpace(host),
		port:        strings.TrimSpace(port),
		username:    username,
		password:    password,
		from:        strings.TrimSpace(from),
		to:          strings.TrimSpace(to),
		frontendURL: strings.TrimRight(strings.TrimSpace(frontendURL), "/"),
	}
}

func (m *PasswordResetMailer) SendPasswordReset(ctx context.Context, username, token string) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" || m.to == "" {
		return errors.New("mailer missing configuration")
	}

	resetLink := fmt.Sprintf("%s/reset-password.html?token=%s", m.frontendURL, url.QueryEscape(token))

	subject := "Password Reset Request"
	body := fmt.Sprintf(
		"A password reset was requested for the asset tracking account %q.\r\n\r\n"+
			"Open the link below to choose a new password (the link expires):\r\n%s\r\n\r\n"+
			"If you did not request this, ignore this email.",
		username, resetLink,
	)

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", m.to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("Content-Transfer-Encoding: 7bit\r\n\r\n")
	message.WriteString(body)
	message.WriteString("\r\n")

	return m.send(ctx, []byte(message.String()))
}

// send drives the SMTP session over a connection bound to the context
// deadline, so a stalled server cannot hold the request past MAIL_TIMEOUT.
func (m *PasswordResetMailer) send(ctx context.Context, message []byte) error {
	addr := net.JoinHostPort(m.host, m.port)
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if m.username != "" || m.password != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", m.username, m.password, m.host)
			if err := client.Auth(auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(m.to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		w.Close()
		return fmt.Errorf("smtp body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp body close: %w", err)
	}
	return client.Quit()
}
