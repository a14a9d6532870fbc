package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltLength = 16

// HashPassword returns a salted hash in "hash.salt" form.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	digest := sha256.Sum256(append(salt, []byte(password)...))
	return hex.EncodeToString(digest[:]) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword checks password against a stored "hash.salt" value in
// constant time.
func VerifyPassword(password, stored string) bool {
	parts := strings.SplitN(stored, ".", 2)
	if len(parts) != 2 {
		return false
	}

	expected, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	digest := sha256.Sum256(append(salt, []byte(password)...))
	return subtle.ConstantTimeCompare(digest[:], expected) == 1
}
