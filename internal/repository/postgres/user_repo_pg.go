package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/assettrack/asset-track-api/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username string, passwordHash, passwordSalt []byte, role string) (*domain.User, error) {
	const query = `
        INSERT INTO users (username, password_hash, password_salt, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, password_hash, password_salt, role, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, username, passwordHash, passwordSalt, role)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, password_salt, role, created_at, updated_at
        FROM users
        WHERE username = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}
