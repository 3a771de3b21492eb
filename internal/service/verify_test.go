package service

import "testing"

func TestVerifyClassification(t *testing.T) {
	v := NewVerifier()

	cases := []struct {
		name     string
		username string
		secret   string
		wantOK   bool
	}{
		{"empty username", "", "x", false},
		{"empty secret", "a", "", false},
		{"both empty", "", "", false},
		{"secret five chars", "ab", "12345", false},
		{"space in username", "a b", "secret1", false},
		{"valid", "ab", "123456", true},
		{"valid longer", "traveler01", "hunter22", true},
		{"five multi-byte chars", "ab", "ééééé", false},
		{"six multi-byte chars", "ab", "éééééé", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Verify(tc.username, tc.secret)
			if got.OK != tc.wantOK {
				t.Fatalf("Verify(%q, %q): ok=%t, want %t (%s)", tc.username, tc.secret, got.OK, tc.wantOK, got.Message)
			}
			if got.Message == "" {
				t.Fatal("expected advisory message, got empty string")
			}
		})
	}
}

func TestVerifyShortCircuitOrder(t *testing.T) {
	v := NewVerifier()

	// Missing credential wins over the length rule.
	got := v.Verify("", "")
	if got.OK {
		t.Fatal("expected rejection")
	}
	if got.Message != "Verification failed: missing credential" {
		t.Fatalf("expected the missing-credential rule to fire first, got %q", got.Message)
	}

	// Length rule wins over the username rule.
	got = v.Verify("a b", "123")
	if got.Message != "Verification failed: secret too short" {
		t.Fatalf("expected the length rule to fire before the username rule, got %q", got.Message)
	}
}
