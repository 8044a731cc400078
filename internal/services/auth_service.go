package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jogossc/boletins-backend/internal/config"
	"github.com/jogossc/boletins-backend/internal/models"
	"github.com/jogossc/boletins-backend/pkg/jwt"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// ErrInvalidCredentials is returned for any failed login, without revealing
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthServiceImpl authenticates the single configured admin account.
type AuthServiceImpl struct {
	cfg    *config.Config
	tokens *jwt.Manager
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(cfg *config.Config, tokens *jwt.Manager) *AuthServiceImpl {
	return &AuthServiceImpl{cfg: cfg, tokens: tokens}
}

// Login checks the credentials against the configured admin account and
// issues a token on success.
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if s.cfg.Admin.PasswordHash == "" || req.Username != s.cfg.Admin.Username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(req.Username, "admin")
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, ExpiresIn: s.tokens.ExpiresIn()}, nil
}
