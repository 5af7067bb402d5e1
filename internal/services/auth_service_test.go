// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alnajjar/makhzan/internal/config"
)

func TestStaticCredentialsPlainPassword(t *testing.T) {
	svc := NewAuthService(NewStaticCredentials(config.AdminConfig{
		Username: "admin",
		Password: "123",
	}))

	assert.NoError(t, svc.Login("admin", "123"))
	assert.ErrorIs(t, svc.Login("admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Login("someone", "123"), ErrInvalidCredentials)
}

func TestStaticCredentialsBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(NewStaticCredentials(config.AdminConfig{
		Username:     "admin",
		Password:     "ignored-when-hash-set",
		PasswordHash: string(hash),
	}))

	assert.NoError(t, svc.Login("admin", "s3cret"))
	assert.ErrorIs(t, svc.Login("admin", "ignored-when-hash-set"), ErrInvalidCredentials)
}
