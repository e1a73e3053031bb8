package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 32

// GenerateSessionToken returns a new opaque hex-encoded session token
func GenerateSessionToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
