package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/assettrack/asset-track-api/internal/repository/ports"
	"github.com/assettrack/asset-track-api/internal/util"
)

type PasswordResetSender interface {
	SendPasswordReset(ctx context.Context, username, token string) error
}

type PasswordResetService struct {
	users    ports.UserRepository
	resets   ports.PasswordResetRepository
	mailer   PasswordResetSender
	tokenTTL time.Duration
	mailWait time.Duration

	now func() time.Time
}

func NewPasswordResetService(users ports.UserRepository, resets ports.PasswordResetRepository, mailer PasswordResetSender, tokenTTL, mailWait time.Duration) *PasswordResetService {
	return &PasswordResetService{
		users:    users,
		resets:   resets,
		mailer:   mailer,
		tokenTTL: tokenTTL,
		mailWait: mailWait,
		now:      time.Now,
	}
}

// Request mints a fresh reset token for the user, replacing any token a
// previous request left behind, and mails the reset link. Replacement is
// atomic in the store, so two concurrent requests still leave exactly one
// live token.
func (s *PasswordResetService) Request(ctx context.Context, username string) error {
	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := util.GenerateToken()
	if err != nil {
		return err
	}

	expiresAt := s.now().Add(s.tokenTTL)
	if _, err := s.resets.Replace(ctx, username, token, expiresAt); err != nil {
		return err
	}

	// A stalled SMTP server must not hang the handler.
	mailCtx, cancel := context.WithTimeout(ctx, s.mailWait)
	defer cancel()
	if err := s.mailer.SendPasswordReset(mailCtx, username, token); err != nil {
		log.Printf("password reset mail for %q failed: %v", username, err)
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// Consume validates the token and changes the password. The expiry bound
// is exclusive: a token presented at exactly expires_at is expired.
// Expired tokens are rejected but left in place for lazy cleanup.
func (s *PasswordResetService) Consume(ctx context.Context, token, newPassword string) error {
	reset, err := s.resets.FindByToken(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return ErrInvalidToken
		}
		return err
	}

	if !s.now().Before(reset.ExpiresAt) {
		return ErrTokenExpired
	}

	hash, salt, err := util.DerivePassword(newPassword)
	if err != nil {
		return err
	}

	return s.resets.Consume(ctx, token, reset.Username, hash, salt)
}
