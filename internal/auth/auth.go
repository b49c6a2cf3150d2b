// Package auth implements the dashboard login. Credentials are two fixed
// username/password pairs compared in memory; this is an explicitly
// non-production placeholder for a real identity backend.
package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	"crescendo/internal/models"
)

// ErrInvalidCredentials is returned for any username/password pair that
// does not match a known user.
var ErrInvalidCredentials = errors.New("invalid username or password")

type credentials struct {
	username string
	password string
	user     models.User
}

// Service verifies logins and mints session tokens.
type Service struct {
	accounts   []credentials
	signingKey []byte
	delay      time.Duration
	tokenTTL   time.Duration
}

// NewService creates an auth service with the two built-in accounts.
// delay simulates the verification round-trip; pass zero in tests.
func NewService(signingKey []byte, delay time.Duration) *Service {
	return &Service{
		accounts: []credentials{
			{
				username: "Muxlisa",
				password: "Solieva123",
				user: models.User{
					ID:    "USR001",
					Name:  "Muxlisa",
					Email: "muxlisa@crescendo.rest",
					Role:  models.UserRoleManager,
				},
			},
			{
				username: "customer",
				password: "customer123",
				user: models.User{
					ID:    "USR002",
					Name:  "Customer",
					Email: "customer@crescendo.rest",
					Role:  models.UserRoleCustomer,
				},
			},
		},
		signingKey: signingKey,
		delay:      delay,
		tokenTTL:   12 * time.Hour,
	}
}

// Login checks the credentials and returns the matching user with a
// signed session token. Any mismatch yields ErrInvalidCredentials; the
// error never says which half was wrong.
func (s *Service) Login(username, password string) (models.User, string, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	for _, account := range s.accounts {
		if account.username == username && account.password == password {
			token, err := s.mintToken(account.user)
			if err != nil {
				return models.User{}, "", err
			}
			return account.user, token, nil
		}
	}
	return models.User{}, "", ErrInvalidCredentials
}

func (s *Service) mintToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// VerifyToken parses a session token and returns the user id and role.
func (s *Service) VerifyToken(tokenString string) (string, models.UserRole, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return sub, models.UserRole(role), nil
}
