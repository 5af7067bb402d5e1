// internal/services/auth_service.go
package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/alnajjar/makhzan/internal/config"
)

// CredentialChecker verifies an identity. The route layer only depends on
// this interface so the static single-admin check can be swapped for a real
// identity provider without touching handlers.
type CredentialChecker interface {
	Verify(username, password string) error
}

// StaticCredentials is the single shared admin identity. When a bcrypt hash
// is configured it wins over the plaintext password.
type StaticCredentials struct {
	username     string
	password     string
	passwordHash string
}

func NewStaticCredentials(cfg config.AdminConfig) *StaticCredentials {
	return &StaticCredentials{
		username:     cfg.Username,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
	}
}

func (s *StaticCredentials) Verify(username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return ErrInvalidCredentials
	}

	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

type AuthService struct {
	checker CredentialChecker
}

func NewAuthService(checker CredentialChecker) *AuthService {
	return &AuthService{checker: checker}
}

// Login returns ErrInvalidCredentials on failure; the caller owns the
// session flag.
func (s *AuthService) Login(username, password string) error {
	return s.checker.Verify(username, password)
}
