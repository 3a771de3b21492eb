// Package gelf ships portal log lines to a Graylog-compatible collector.
package gelf

import (
	"encoding/json"
	"net"
	"os"
	"strings"
	"time"
)

// Writer sends one GELF message per log line over UDP. It implements
// io.Writer so it can feed log.SetOutput through an io.MultiWriter.
type Writer struct {
	conn     net.Conn
	hostname string
}

// New creates a GELF UDP writer connected to addr (e.g. "127.0.0.1:12201").
func New(addr string) (*Writer, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "visaportal"
	}
	return &Writer{conn: conn, hostname: hostname}, nil
}

// Write sends one message, fire-and-forget. The stdlib log prefix
// ("2006/01/02 15:04:05 ", 20 characters when present) is stripped so the
// short_message stays clean.
func (w *Writer) Write(p []byte) (int, error) {
	short := strings.TrimRight(string(p), "\n")
	if len(short) > 20 && short[4] == '/' && short[7] == '/' && short[10] == ' ' && short[13] == ':' {
		short = short[20:]
	}

	msg := map[string]interface{}{
		"version":       "1.1",
		"host":          w.hostname,
		"short_message": short,
		"timestamp":     float64(time.Now().UnixNano()) / 1e9,
		"level":         levelFor(short),
		"_service":      "visaportal",
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return len(p), nil // never fail the log call
	}
	w.conn.Write(payload)
	return len(p), nil
}

func (w *Writer) Close() error {
	return w.conn.Close()
}

// levelFor maps log line markers onto syslog severities.
func levelFor(short string) int {
	switch {
	case strings.Contains(short, "PANIC:") || strings.Contains(short, "Fatal"):
		return 3 // Error
	case strings.HasPrefix(short, "Warning:") || strings.Contains(short, "dispatch failed"):
		return 4 // Warning
	default:
		return 6 // Informational
	}
}
