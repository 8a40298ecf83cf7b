// Package shared holds the sentinel errors of the API and small helpers for
// random salts and wiping secrets from memory.
package shared

import "crypto/rand"

// GenerateRandByteArray returns n bytes from crypto/rand.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
