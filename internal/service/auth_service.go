package service

import (
	"context"
	"time"

	"github.com/assettrack/asset-track-api/internal/domain"
	"github.com/assettrack/asset-track-api/internal/repository/ports"
	"github.com/assettrack/asset-track-api/internal/util"
)

type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	sessionTTL time.Duration

	now func() time.Time
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Login verifies the credentials and issues a session. Unknown usernames
// and wrong passwords both come back as ErrInvalidCredentials, so the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateToken()
	if err != nil {
		return nil, err
	}

	// Absolute expiry from issuance; resolving a session never extends it.
	expiresAt := s.now().Add(s.sessionTTL)
	return s.sessions.CreateSession(ctx, token, user.Principal(), expiresAt)
}

// Resolve maps a session token back to its principal. Unknown, expired,
// and deactivated sessions are all ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, ErrUnauthenticated
	}
	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return domain.Principal{}, ErrUnauthenticated
		}
		return domain.Principal{}, err
	}
	if !s.now().Before(session.ExpiresAt) {
		return domain.Principal{}, ErrUnauthenticated
	}
	return session.Principal(), nil
}

// Logout is idempotent; destroying an unknown or expired session succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeactivateSession(ctx, token); err != nil && !isNotFound(err) {
		return err
	}
	return nil
}
