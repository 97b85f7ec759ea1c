package ports

import (
	"context"

	"github.com/assettrack/asset-track-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username string, passwordHash, passwordSalt []byte, role string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
