package service

import "time"

const appIDPrefix = "APP"

// IDGenerator stamps applications with human-readable, time-ordered
// identifiers: the literal prefix followed by the wall clock as
// YYYYMMDDHHMMSS. Two submissions within the same second share an
// identifier; that collision window is accepted and not deduplicated.
type IDGenerator struct {
	now func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Generate returns a fresh application identifier.
func (g *IDGenerator) Generate() string {
	return appIDPrefix + g.now().Format("20060102150405")
}

// Timestamp returns the submission time at second precision, from the same
// clock the identifier is derived from.
func (g *IDGenerator) Timestamp() string {
	return g.now().Format("2006-01-02 15:04:05")
}
