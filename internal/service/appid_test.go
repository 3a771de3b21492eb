package service

import (
	"testing"
	"time"
)

func TestIDGeneratorFormat(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	g := &IDGenerator{now: func() time.Time { return fixed }}

	id := g.Generate()
	if id != "APP20260314150926" {
		t.Fatalf("expected APP20260314150926, got %q", id)
	}
	if len(id) != len("APP")+14 {
		t.Fatalf("expected prefix plus 14 digits, got %d chars", len(id))
	}
	for _, c := range id[3:] {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit %q in id %q", c, id)
		}
	}

	if ts := g.Timestamp(); ts != "2026-03-14 15:09:26" {
		t.Fatalf("expected second-precision timestamp, got %q", ts)
	}
}

func TestIDGeneratorOrdering(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	g := &IDGenerator{now: func() time.Time { return now }}

	first := g.Generate()
	now = now.Add(time.Second)
	second := g.Generate()

	if first == second {
		t.Fatalf("ids a second apart must differ, both %q", first)
	}
	if !(first < second) {
		t.Fatalf("ids must be time-ordered: %q then %q", first, second)
	}
}
