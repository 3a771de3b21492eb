package service

import (
	"errors"
	"log"

	"visaportal/internal/auth"
)

var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// AuthService authenticates the single configured operator account. The
// password is bcrypt-hashed once at construction so the plaintext from the
// environment isn't kept around.
type AuthService struct {
	operatorEmail string
	passwordHash  string
	jwtSecret     string
}

func NewAuthService(operatorEmail, operatorPass, jwtSecret string) *AuthService {
	s := &AuthService{operatorEmail: operatorEmail, jwtSecret: jwtSecret}
	if operatorPass == "" {
		log.Printf("auth: OPERATOR_PASS not set, operator login disabled")
		return s
	}
	hash, err := auth.HashPassword(operatorPass)
	if err != nil {
		log.Printf("auth: hashing operator password failed, login disabled: %v", err)
		return s
	}
	s.passwordHash = hash
	return s
}

type AuthResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	if s.passwordHash == "" || email != s.operatorEmail || !auth.CheckPassword(s.passwordHash, password) {
		return nil, ErrInvalidCredentials
	}
	token, err := auth.GenerateToken(s.jwtSecret, email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Email: email}, nil
}
