package config

import "testing"

func TestComplete(t *testing.T) {
	full := Config{
		SMTPServer:    "relay.example.com",
		SMTPPort:      587,
		EmailUsername: "portal@example.com",
		EmailPassword: "relay-pass",
		AdminEmail:    "admin@example.com",
		SessionSecret: "secret",
	}
	if !full.Complete() {
		t.Fatal("expected complete config")
	}

	missing := []func(c *Config){
		func(c *Config) { c.SMTPServer = "" },
		func(c *Config) { c.SMTPPort = 0 },
		func(c *Config) { c.EmailUsername = "" },
		func(c *Config) { c.EmailPassword = "" },
		func(c *Config) { c.AdminEmail = "" },
		func(c *Config) { c.SessionSecret = "" },
	}
	for i, blank := range missing {
		c := full
		blank(&c)
		if c.Complete() {
			t.Fatalf("case %d: expected incomplete config", i)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PORTAL_TEST_PORT", "2525")
	if got := getEnvInt("PORTAL_TEST_PORT", 587); got != 2525 {
		t.Fatalf("expected 2525, got %d", got)
	}

	t.Setenv("PORTAL_TEST_PORT", "not-a-number")
	if got := getEnvInt("PORTAL_TEST_PORT", 587); got != 587 {
		t.Fatalf("expected fallback 587, got %d", got)
	}

	if got := getEnvInt("PORTAL_TEST_UNSET", 587); got != 587 {
		t.Fatalf("expected fallback for unset key, got %d", got)
	}
}
