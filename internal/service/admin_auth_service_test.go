package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vanrental/internal/db"
)

type fakeAdminAuthRepo struct {
	admin *db.Admin
}

func (f *fakeAdminAuthRepo) GetByEmail(email string) (*db.Admin, error) {
	if f.admin != nil && f.admin.Email == email {
		return f.admin, nil
	}
	return nil, nil
}

func (f *fakeAdminAuthRepo) CreateAdmin(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	f.admin = &db.Admin{ID: 1, Email: email, PasswordHash: string(hash)}
	return nil
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeAdminAuthRepo{}
	require.NoError(t, repo.CreateAdmin("ops@example.com", "hunter2"))
	svc := NewAdminAuthService(repo)

	tokenString, err := svc.Login("ops@example.com", "hunter2")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ops@example.com", claims["email"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeAdminAuthRepo{}
	require.NoError(t, repo.CreateAdmin("ops@example.com", "hunter2"))
	svc := NewAdminAuthService(repo)

	_, err := svc.Login("ops@example.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAdminAuthService(&fakeAdminAuthRepo{})
	_, err := svc.Login("nobody@example.com", "hunter2")
	assert.EqualError(t, err, "invalid credentials")
}

func TestEnsureAdminRejectsEmptyCredentials(t *testing.T) {
	svc := NewAdminAuthService(&fakeAdminAuthRepo{})
	assert.Error(t, svc.EnsureAdmin("", "password"))
	assert.Error(t, svc.EnsureAdmin("ops@example.com", ""))
}
