package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/assettrack/asset-track-api/internal/domain"
)

// AssetRepository serves every category table; the tables share one shape
// and differ only by name. Category names reach this repo only after
// passing the registry, and are still quoted as identifiers before being
// placed in a statement.
type AssetRepository struct {
	db *sqlx.DB
}

func NewAssetRepo(db *sqlx.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func categoryTable(category string) (string, error) {
	if !domain.ValidCategory(category) {
		return "", fmt.Errorf("unknown category table %q", category)
	}
	return pq.QuoteIdentifier(category), nil
}

func (r *AssetRepository) Insert(ctx context.Context, category string, input domain.NewAssetInput, qrCode, barcode, submittedBy string) (*domain.AssetRecord, error) {
	table, err := categoryTable(category)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (name, serial_number, employee_name, qr_code, barcode, submitted_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, serial_number, employee_name, qr_code, barcode, submitted_by, created_at, updated_at
    `, table)

	row := r.db.QueryRowxContext(ctx, query, input.Name, input.SerialNumber, input.EmployeeName, qrCode, barcode, submittedBy)
	var record domain.AssetRecord
	if err := row.StructScan(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AssetRepository) ListByCategory(ctx context.Context, category string) ([]domain.AssetRecord, error) {
	table, err := categoryTable(category)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
        SELECT id, name, serial_number, employee_name, qr_code, barcode, submitted_by, created_at, updated_at
        FROM %s
        ORDER BY created_at DESC
    `, table)

	records := []domain.AssetRecord{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AssetRepository) HistoryByCategory(ctx context.Context, category string) ([]domain.HistoryEntry, error) {
	table, err := categoryTable(category)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
        SELECT id, name, serial_number, employee_name, submitted_by, created_at
        FROM %s
    `, table)

	entries := []domain.HistoryEntry{}
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Category = category
	}
	return entries, nil
}
