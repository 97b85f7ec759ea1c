package util

import (
	"crypto/rand"
	"encoding/hex"
)

const tokenBytes = 32

// GenerateToken mints an opaque hex token with 256 bits of randomness,
// used for both session identifiers and password-reset tokens.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
