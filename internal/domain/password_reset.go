package domain

import "time"

// PasswordReset is a single-use, time-limited token mailed to a user to
// authorize a password change without an active session. At most one live
// token exists per username.
type PasswordReset struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Token     string    `db:"token" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
