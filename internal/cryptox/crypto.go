// Package cryptox hashes and verifies admin passwords for the development API.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dmitrijs2005/sitecms/internal/shared"
	"golang.org/x/crypto/argon2"
)

const saltSize = 16

var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// HashPassword returns "<salt hex>$<key hex>" for a fresh random salt.
func HashPassword(password []byte) string {
	salt := shared.GenerateRandByteArray(saltSize)
	key := DeriveKey(password, salt)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(key)
}

// VerifyPassword reports whether password matches a value produced by
// HashPassword. The comparison is constant time.
func VerifyPassword(password []byte, encoded string) (bool, error) {
	saltHex, keyHex, ok := strings.Cut(encoded, "$")
	if !ok {
		return false, ErrMalformedHash
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, ErrMalformedHash
	}

	got := DeriveKey(password, salt)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
