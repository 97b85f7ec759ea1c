package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/assettrack/asset-track-api/internal/domain"
	"github.com/assettrack/asset-track-api/internal/util"
)

const usersDDL = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username TEXT UNIQUE NOT NULL,
    password_hash BYTEA NOT NULL,
    password_salt BYTEA NOT NULL,
    role TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const sessionsDDL = `
CREATE TABLE IF NOT EXISTS sessions (
    id BIGSERIAL PRIMARY KEY,
    token TEXT UNIQUE NOT NULL,
    username TEXT NOT NULL,
    role TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    expires_at TIMESTAMPTZ NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT true
)`

const passwordResetsDDL = `
CREATE TABLE IF NOT EXISTS password_resets (
    id BIGSERIAL PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    token TEXT UNIQUE NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const updatedAtFnDDL = `
CREATE OR REPLACE FUNCTION update_updated_at_column()
RETURNS TRIGGER AS $$
BEGIN
    NEW.updated_at = NOW();
    RETURN NEW;
END;
$$ LANGUAGE plpgsql`

// EnsureSchema creates the fixed tables and one identically shaped table
// per registry category, each with an updated_at refresh trigger.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, ddl := range []string{usersDDL, sessionsDDL, passwordResetsDDL, updatedAtFnDDL} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	for _, category := range domain.Categories() {
		table := pq.QuoteIdentifier(category)

		createTable := fmt.Sprintf(`
            CREATE TABLE IF NOT EXISTS %s (
                id BIGSERIAL PRIMARY KEY,
                name TEXT NOT NULL,
                serial_number TEXT,
                employee_name TEXT,
                qr_code TEXT,
                barcode TEXT,
                submitted_by TEXT NOT NULL DEFAULT '',
                created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
                updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
            )`, table)
		if _, err := db.ExecContext(ctx, createTable); err != nil {
			return fmt.Errorf("create table %s: %w", category, err)
		}

		trigger := fmt.Sprintf(`
            DROP TRIGGER IF EXISTS %s ON %s;
            CREATE TRIGGER %s
            BEFORE UPDATE ON %s
            FOR EACH ROW
            EXECUTE PROCEDURE update_updated_at_column()`,
			pq.QuoteIdentifier("update_"+category+"_updated_at"), table,
			pq.QuoteIdentifier("update_"+category+"_updated_at"), table)
		if _, err := db.ExecContext(ctx, trigger); err != nil {
			return fmt.Errorf("create trigger for %s: %w", category, err)
		}
	}

	return nil
}

// SeedUser provisions a user if the username is free. Existing users are
// left untouched, so repeated startups never reset a changed password.
func SeedUser(ctx context.Context, db *sqlx.DB, username, password, role string) error {
	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO users (username, password_hash, password_salt, role)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (username) DO NOTHING
    `
	_, err = db.ExecContext(ctx, query, username, hash, salt, role)
	return err
}
