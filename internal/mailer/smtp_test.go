package mailer

import (
	"errors"
	"net"
	"net/textproto"
	"strings"
	"testing"

	"visaportal/internal/models"
)

func TestClassifyAuth(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want models.FailureKind
	}{
		{"permanent rejection", &textproto.Error{Code: 535, Msg: "authentication credentials invalid"}, models.FailAuth},
		{"mechanism rejected", &textproto.Error{Code: 534, Msg: "mechanism too weak"}, models.FailAuth},
		{"temporary relay trouble", &textproto.Error{Code: 454, Msg: "temporary authentication failure"}, models.FailTransport},
		{"connection dropped", &net.OpError{Op: "read", Err: errors.New("connection reset")}, models.FailTransport},
		{"something else", errors.New("boom"), models.FailUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyAuth(tc.err); got != tc.want {
				t.Fatalf("classifyAuth(%v) = %s, want %s", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	if got := classify(&textproto.Error{Code: 550, Msg: "mailbox unavailable"}); got != models.FailTransport {
		t.Fatalf("protocol reply should classify as transport, got %s", got)
	}
	if got := classify(&net.OpError{Op: "dial", Err: errors.New("connection refused")}); got != models.FailTransport {
		t.Fatalf("network error should classify as transport, got %s", got)
	}
	if got := classify(errors.New("boom")); got != models.FailUnknown {
		t.Fatalf("unclassified error should be unknown, got %s", got)
	}
}

func TestDispatchUnreachableRelay(t *testing.T) {
	// Grab a free port and close it again so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	d := NewSMTPDispatcher("127.0.0.1", port, "portal@example.com", "relay-pass", "admin@example.com")
	result := d.Dispatch("subject", "body")

	if result.Sent {
		t.Fatal("dispatch to an unreachable relay must not report sent")
	}
	if result.Kind != models.FailTransport {
		t.Fatalf("expected %s, got %s", models.FailTransport, result.Kind)
	}
	if result.Err == nil {
		t.Fatal("expected the underlying error to be retained")
	}
}

func TestMessageEnvelope(t *testing.T) {
	d := NewSMTPDispatcher("relay.example.com", 587, "portal@example.com", "relay-pass", "admin@example.com")
	msg := d.message("New Visa Application - APP1", "line one\nline two\n")

	for _, want := range []string{
		"From: portal@example.com\r\n",
		"To: admin@example.com\r\n",
		"Subject: New Visa Application - APP1\r\n",
		"\r\n\r\nline one\r\nline two\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}
