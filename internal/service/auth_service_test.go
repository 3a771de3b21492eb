package service

import (
	"errors"
	"testing"
)

func TestAuthServiceLogin(t *testing.T) {
	svc := NewAuthService("ops@example.com", "rightpass", "jwt-secret")

	result, err := svc.Login("ops@example.com", "rightpass")
	if err != nil {
		t.Fatalf("login: unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected token, got empty string")
	}

	if _, err := svc.Login("ops@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("intruder@example.com", "rightpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong email, got %v", err)
	}
}

func TestAuthServiceDisabledWithoutPassword(t *testing.T) {
	svc := NewAuthService("ops@example.com", "", "jwt-secret")
	if _, err := svc.Login("ops@example.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected login disabled, got %v", err)
	}
}
