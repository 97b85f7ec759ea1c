package ports

import (
	"context"

	"github.com/assettrack/asset-track-api/internal/domain"
)

// AssetRepository is parameterized by category name. Implementations may
// assume the category has already passed domain.ValidCategory; callers are
// responsible for validating before any of these methods run.
type AssetRepository interface {
	Insert(ctx context.Context, category string, input domain.NewAssetInput, qrCode, barcode, submittedBy string) (*domain.AssetRecord, error)
	ListByCategory(ctx context.Context, category string) ([]domain.AssetRecord, error)
	HistoryByCategory(ctx context.Context, category string) ([]domain.HistoryEntry, error)
}
