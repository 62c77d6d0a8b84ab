// Package service implements the server's business operations over the
// user repository.
package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/akimenko/userdesk/internal/logging"
	"github.com/akimenko/userdesk/internal/server/auth"
	"github.com/akimenko/userdesk/internal/server/domain"
	"github.com/akimenko/userdesk/internal/server/metrics"
	"github.com/akimenko/userdesk/internal/server/repository"
)

// AuthService checks credentials and issues session tokens.
type AuthService struct {
	repo     repository.Repository
	secret   []byte
	tokenTTL time.Duration
	logger   logging.Logger
}

func NewAuthService(repo repository.Repository, secret []byte, tokenTTL time.Duration, logger logging.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

// Login returns a signed token for valid credentials. Unknown accounts
// and wrong passwords both map to ErrInvalidCredentials so the response
// does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		s.logger.Warn(ctx, "login failed", "email", email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Email, s.secret, s.tokenTTL)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info(ctx, "login ok", "email", email)
	return token, nil
}
