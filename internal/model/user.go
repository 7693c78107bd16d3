package model

// User is a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // hex-encoded PBKDF2-SHA256 digest
	Salt         []byte
}
