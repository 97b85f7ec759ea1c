package domain

import "time"

// Session is server-side state keyed by an opaque token handed to the
// client as an HTTP-only cookie. The expiry is absolute from issuance.
type Session struct {
	ID        int64     `db:"id" json:"id"`
	Token     string    `db:"token" json:"token"`
	Username  string    `db:"username" json:"username"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	IsActive  bool      `db:"is_active" json:"is_active"`
}

func (s *Session) Principal() Principal {
	return Principal{Username: s.Username, Role: s.Role}
}
