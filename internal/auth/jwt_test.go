package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "ops@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "ops@example.com" {
		t.Fatalf("expected email round-tripped, got %q", claims.Email)
	}
	if claims.Role != "operator" {
		t.Fatalf("expected operator role, got %q", claims.Role)
	}
	if claims.ID == "" {
		t.Fatal("expected a token id")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "ops@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("rightpass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "rightpass") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrongpass") {
		t.Fatal("expected mismatched password to fail")
	}
}
