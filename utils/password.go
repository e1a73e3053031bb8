package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes    = 16
	pbkdf2Rounds = 10000
	verifierLen  = 32
)

// GenerateSalt returns a fresh hex-encoded random salt
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives a hex-encoded PBKDF2-SHA256 verifier from the
// password and a hex-encoded salt. The plaintext password is never stored.
func HashPassword(password, salt string) (string, error) {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	verifier := pbkdf2.Key([]byte(password), rawSalt, pbkdf2Rounds, verifierLen, sha256.New)
	return hex.EncodeToString(verifier), nil
}

// VerifyPassword recomputes the verifier with the stored salt and compares
// it against the stored hash in constant time.
func VerifyPassword(password, salt, storedHash string) (bool, error) {
	computed, err := HashPassword(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1, nil
}
