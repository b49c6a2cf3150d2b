package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"crescendo/internal/models"
)

func TestLogin_Manager(t *testing.T) {
	svc := NewService([]byte("test-key"), 0)

	user, token, err := svc.Login("Muxlisa", "Solieva123")
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleManager, user.Role)
	assert.NotEmpty(t, token)

	sub, role, err := svc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, sub)
	assert.Equal(t, models.UserRoleManager, role)
}

func TestLogin_Customer(t *testing.T) {
	svc := NewService([]byte("test-key"), 0)

	user, _, err := svc.Login("customer", "customer123")
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleCustomer, user.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := NewService([]byte("test-key"), 0)

	cases := []struct{ username, password string }{
		{"Muxlisa", "wrong"},
		{"wrong", "Solieva123"},
		{"", ""},
		{"customer", "Solieva123"}, // right password, wrong account
	}
	for _, tc := range cases {
		_, _, err := svc.Login(tc.username, tc.password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("login(%q, %q): expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}

func TestVerifyToken_WrongKey(t *testing.T) {
	svc := NewService([]byte("test-key"), 0)
	_, token, err := svc.Login("customer", "customer123")
	assert.NoError(t, err)

	other := NewService([]byte("other-key"), 0)
	_, _, err = other.VerifyToken(token)
	assert.Error(t, err)
}
