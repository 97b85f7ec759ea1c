package ports

import (
	"context"
	"time"

	"github.com/assettrack/asset-track-api/internal/domain"
)

type PasswordResetRepository interface {
	// Replace atomically swaps in a new token row for the username, so at
	// most one live token per username survives concurrent requests.
	Replace(ctx context.Context, username, token string, expiresAt time.Time) (*domain.PasswordReset, error)
	FindByToken(ctx context.Context, token string) (*domain.PasswordReset, error)
	// Consume updates the user's password and deletes the token row as one
	// transaction. A failed password update leaves the token untouched.
	Consume(ctx context.Context, token, username string, passwordHash, passwordSalt []byte) error
}
