package service

import (
	"context"
	"sort"

	"github.com/assettrack/asset-track-api/internal/domain"
	"github.com/assettrack/asset-track-api/internal/repository/ports"
)

type HistoryService struct {
	assets ports.AssetRepository
}

func NewHistoryService(assets ports.AssetRepository) *HistoryService {
	return &HistoryService{assets: assets}
}

// History fans a read out across every category table, tags each row with
// its category, and merges the result newest-first. The sort is stable,
// so rows with equal timestamps keep registry-then-fetch order and the
// output is deterministic.
func (s *HistoryService) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	merged := []domain.HistoryEntry{}
	for _, category := range domain.Categories() {
		entries, err := s.assets.HistoryByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		merged = append(merged, entries...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}
