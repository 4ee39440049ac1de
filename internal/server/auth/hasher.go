// Package auth provides the credential primitives of authgate: salted
// password hashing and signed token issuance.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/common"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters (OWASP-recommended).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4

	// SaltLength is the size of a per-account random salt.
	SaltLength = 16

	// KeyLength is the size of the derived password hash.
	KeyLength = 32
)

// HashPassword derives a one-way hash of the password using argon2id and
// a fresh random salt. Both the hash and the salt are returned so the
// caller can persist them side by side. Every call produces a new salt;
// an error is only possible when the entropy source fails.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("salt generation error: %w", err)
	}

	hash = argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, KeyLength)
	return hash, salt, nil
}

// VerifyPassword recomputes the hash of the candidate password with the
// stored salt and compares it against the stored hash in constant time.
// A mismatch returns (false, nil); malformed stored material returns
// common.ErrorDataIntegrity so callers can tell corrupted records apart
// from a wrong password.
func VerifyPassword(password string, hash, salt []byte) (bool, error) {
	if len(salt) != SaltLength || len(hash) != KeyLength {
		return false, fmt.Errorf("%w: hash len %d, salt len %d", common.ErrorDataIntegrity, len(hash), len(salt))
	}

	candidate := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, KeyLength)

	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}
