package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/assettrack/asset-track-api/internal/domain"
)

type PasswordResetRepository struct {
	db *sqlx.DB
}

func NewPasswordResetRepo(db *sqlx.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// replaceResetQuery is a single upsert keyed on the username's unique
// constraint, so concurrent requests for the same user serialize on the
// row and exactly one token survives.
const replaceResetQuery = `
        INSERT INTO password_resets (username, token, expires_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (username) DO UPDATE
        SET token = EXCLUDED.token,
            expires_at = EXCLUDED.expires_at,
            created_at = NOW()
        RETURNING id, username, token, expires_at, created_at
    `

func (r *PasswordResetRepository) Replace(ctx context.Context, username, token string, expiresAt time.Time) (*domain.PasswordReset, error) {
	var reset domain.PasswordReset
	if err := r.db.QueryRowxContext(ctx, replaceResetQuery, username, token, expiresAt).StructScan(&reset); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) FindByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	const query = `
        SELECT id, username, token, expires_at, created_at
        FROM password_resets
        WHERE token = $1
    `
	var reset domain.PasswordReset
	if err := r.db.GetContext(ctx, &reset, query, token); err != nil {
		return nil, err
	}
	return &reset, nil
}

// Consume changes the user's password and burns the token in one
// transaction, so a failed password update never consumes the token.
func (r *PasswordResetRepository) Consume(ctx context.Context, token, username string, passwordHash, passwordSalt []byte) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const updateUser = `
        UPDATE users
        SET password_hash = $2, password_salt = $3, updated_at = NOW()
        WHERE username = $1
    `
	if _, err := tx.ExecContext(ctx, updateUser, username, passwordHash, passwordSalt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM password_resets WHERE token = $1`, token); err != nil {
		return err
	}

	return tx.Commit()
}
