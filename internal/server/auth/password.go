package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters; sized for an interactive login path.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// NewSalt returns a fresh random salt for password hashing.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashPassword derives an argon2id hash of password with the given salt.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassword reports whether password matches the stored hash.
// The comparison is constant-time.
func VerifyPassword(password, salt, hash []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
