package usecase

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize       = 16
	pbkdf2Iters    = 120000
	pbkdf2KeyBytes = 32
)

// hashPassword derives a hex-encoded PBKDF2-SHA256 digest.
func hashPassword(password string, salt []byte) string {
	dk := pbkdf2.Key([]byte(password), salt, pbkdf2Iters, pbkdf2KeyBytes, sha256.New)
	return hex.EncodeToString(dk)
}

// newSalt returns a fresh random salt.
func newSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// verifyPassword compares in constant time.
func verifyPassword(password string, salt []byte, wantHex string) bool {
	got := hashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(wantHex)) == 1
}
