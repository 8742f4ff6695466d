package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
)

// SMTPNotifier sends confirmation mail over implicit-TLS SMTP (port 465
// style). It satisfies the ticket pipeline's Notifier interface.
type SMTPNotifier struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

func New(host, port, username, password, sender string) *SMTPNotifier {
	return &SMTPNotifier{Host: host, Port: port, Username: username, Password: password, Sender: sender}
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(n.Host, n.Port)

	dialer := &tls.Dialer{Config: &tls.Config{ServerName: n.Host}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}
	client, err := smtp.NewClient(conn, n.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open smtp session: %w", err)
	}
	defer client.Close()

	if err := client.Auth(smtp.PlainAuth("", n.Username, n.Password, n.Host)); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(n.Sender); err != nil {
		return fmt.Errorf("smtp MAIL failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT failed: %w", err)
	}
	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", n.Sender, to, subject, body)
	if _, err := wc.Write([]byte(msg)); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write mail body: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to finish mail body: %w", err)
	}
	return client.Quit()
}
