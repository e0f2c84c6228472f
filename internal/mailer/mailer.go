// Package mailer delivers rendered emails over SMTP.
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"github.com/emersion/go-message/mail"

	"github.com/ccarella/app.charmverse.io/internal/platform/config"
	dErrors "github.com/ccarella/app.charmverse.io/pkg/domain-errors"
	"github.com/ccarella/app.charmverse.io/pkg/platform/sentinel"
)

// Message is one outbound email. The body is HTML.
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// Sender delivers a message to its recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends mail through a configured SMTP relay. Depending on the
// relay it either speaks implicit TLS on connect or relies on the server
// advertising STARTTLS.
type SMTPSender struct {
	cfg    config.SMTP
	logger *slog.Logger
}

func NewSMTPSender(cfg config.SMTP, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "message has no recipient")
	}

	raw, err := encodeMessage(s.cfg, msg)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	auth := s.auth()

	var sendErr error
	if s.cfg.ImplicitTLS {
		sendErr = s.sendImplicitTLS(ctx, addr, auth, msg.To, raw)
	} else {
		sendErr = smtp.SendMail(addr, auth, s.cfg.From, []string{msg.To}, raw)
	}
	if sendErr != nil {
		return dErrors.Wrap(fmt.Errorf("%w: %w", sentinel.ErrUnavailable, sendErr),
			dErrors.CodeUnavailable, fmt.Sprintf("send email via %s", addr))
	}

	s.logger.Debug("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (s *SMTPSender) auth() smtp.Auth {
	if s.cfg.Username == "" {
		return nil
	}
	return smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
}

// sendImplicitTLS dials a TLS socket first and runs SMTP over it, for relays
// on port 465 that never advertise STARTTLS.
func (s *SMTPSender) sendImplicitTLS(ctx context.Context, addr string, auth smtp.Auth, to string, raw []byte) error {
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: 15 * time.Second},
		Config:    &tls.Config{ServerName: s.cfg.Host},
	}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close body: %w", err)
	}
	return client.Quit()
}

// encodeMessage builds the full MIME message, headers included.
func encodeMessage(cfg config.SMTP, msg Message) ([]byte, error) {
	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Name: cfg.FromName, Address: cfg.From}})
	h.SetAddressList("To", []*mail.Address{{Name: msg.ToName, Address: msg.To}})
	h.SetSubject(msg.Subject)
	h.SetContentType("text/html", map[string]string{"charset": "utf-8"})

	var buf bytes.Buffer
	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("encode email headers: %w", err)
	}
	if _, err := w.Write([]byte(msg.HTMLBody)); err != nil {
		w.Close()
		return nil, fmt.Errorf("encode email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish email encoding: %w", err)
	}
	return buf.Bytes(), nil
}
