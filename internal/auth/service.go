package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/toolvault/toolvault/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("admin email and password must be configured")
)

// Service authenticates the single configured admin and manages their
// session tokens. The configured password is hashed once at construction
// and only the hash is kept.
type Service struct {
	adminEmail   string
	passwordHash string
	registry     *Registry
	lifetime     time.Duration
}

// NewService creates the auth service from configuration. It fails when
// the admin credentials are unset: secrets never ship as source-embedded
// fallbacks.
func NewService(cfg config.Auth, lifetime time.Duration) (*Service, error) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &Service{
		adminEmail:   cfg.AdminEmail,
		passwordHash: hash,
		registry:     NewRegistry(),
		lifetime:     lifetime,
	}, nil
}

// Login validates the credential pair against the configured admin and,
// on success, registers and returns a fresh opaque session token.
func (s *Service) Login(email, password string) (string, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1

	// Always run the bcrypt comparison so a wrong email costs the same
	// as a wrong password.
	passwordErr := CheckPassword(password, s.passwordHash)

	if !emailMatch || passwordErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := GenerateSessionToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.registry.Insert(token, time.Now().Add(s.lifetime))
	return token, nil
}

// Logout removes a session token. Unknown tokens are ignored.
func (s *Service) Logout(token string) {
	s.registry.Remove(token)
}

// Check reports whether a token belongs to a live admin session.
func (s *Service) Check(token string) bool {
	return s.registry.Valid(token)
}

// PurgeExpired drops expired session tokens from the registry.
func (s *Service) PurgeExpired() int {
	return s.registry.PurgeExpired()
}
