package ports

import (
	"context"
	"time"

	"github.com/assettrack/asset-track-api/internal/domain"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, token string, principal domain.Principal, expiresAt time.Time) (*domain.Session, error)
	FindActiveSession(ctx context.Context, token string) (*domain.Session, error)
	DeactivateSession(ctx context.Context, token string) error
}
