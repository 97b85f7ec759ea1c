package service

import (
	"database/sql"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrNameRequired       = errors.New("name required")
	ErrGeneration         = errors.New("code generation failed")
	ErrDelivery           = errors.New("reset mail delivery failed")
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
