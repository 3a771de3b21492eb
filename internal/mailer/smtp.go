package mailer

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"

	"visaportal/internal/models"
)

// SMTPDispatcher delivers one notification per call over an authenticated,
// STARTTLS-upgraded session to the configured relay. No connection is
// retained between calls and no attempt is ever retried: each submission
// pays the full connection-setup cost, which is acceptable at the expected
// request volume.
type SMTPDispatcher struct {
	host     string
	port     int
	username string
	password string
	to       string
}

func NewSMTPDispatcher(host string, port int, username, password, to string) *SMTPDispatcher {
	return &SMTPDispatcher{
		host:     host,
		port:     port,
		username: username,
		password: password,
		to:       to,
	}
}

// Dispatch attempts exactly one delivery. Failures are returned as a
// classified DispatchResult, never propagated; the connection is closed on
// every path.
func (d *SMTPDispatcher) Dispatch(subject, body string) models.DispatchResult {
	addr := net.JoinHostPort(d.host, strconv.Itoa(d.port))
	log.Printf("mailer: connecting to %s", addr)

	c, err := smtp.Dial(addr)
	if err != nil {
		return failed(models.FailTransport, fmt.Errorf("dial %s: %w", addr, err))
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); !ok {
		return failed(models.FailTransport, fmt.Errorf("relay %s does not offer STARTTLS", addr))
	}
	if err := c.StartTLS(&tls.Config{ServerName: d.host}); err != nil {
		return failed(models.FailTransport, fmt.Errorf("starttls: %w", err))
	}

	auth := smtp.PlainAuth("", d.username, d.password, d.host)
	if err := c.Auth(auth); err != nil {
		return failed(classifyAuth(err), fmt.Errorf("auth %s: %w", d.username, err))
	}

	if err := c.Mail(d.username); err != nil {
		return failed(classify(err), fmt.Errorf("mail from: %w", err))
	}
	if err := c.Rcpt(d.to); err != nil {
		return failed(classify(err), fmt.Errorf("rcpt to: %w", err))
	}
	wc, err := c.Data()
	if err != nil {
		return failed(classify(err), fmt.Errorf("data: %w", err))
	}
	if _, err := wc.Write([]byte(d.message(subject, body))); err != nil {
		wc.Close()
		return failed(classify(err), fmt.Errorf("write body: %w", err))
	}
	if err := wc.Close(); err != nil {
		return failed(classify(err), fmt.Errorf("close body: %w", err))
	}

	if err := c.Quit(); err != nil {
		// Delivery was accepted at DATA; a failed QUIT doesn't undo it.
		log.Printf("mailer: quit: %v", err)
	}

	log.Printf("mailer: notification delivered to %s", d.to)
	return models.DispatchResult{Sent: true}
}

// message assembles the RFC 5322 envelope headers and plain-text body.
func (d *SMTPDispatcher) message(subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", d.username)
	fmt.Fprintf(&b, "To: %s\r\n", d.to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return b.String()
}

func failed(kind models.FailureKind, err error) models.DispatchResult {
	log.Printf("mailer: dispatch failed (%s): %v", kind, err)
	return models.DispatchResult{Sent: false, Kind: kind, Err: err}
}

// classifyAuth distinguishes a credential rejected by the relay (permanent
// 5xx reply to AUTH) from transport trouble during the AUTH exchange.
func classifyAuth(err error) models.FailureKind {
	var proto *textproto.Error
	if errors.As(err, &proto) {
		if proto.Code >= 500 && proto.Code < 600 {
			return models.FailAuth
		}
		return models.FailTransport
	}
	return classify(err)
}

// classify maps non-auth errors onto the failure taxonomy: protocol replies
// and network errors are transport failures, anything else is unknown.
func classify(err error) models.FailureKind {
	var proto *textproto.Error
	if errors.As(err, &proto) {
		return models.FailTransport
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return models.FailTransport
	}
	return models.FailUnknown
}
