package cryptox

import (
	"bytes"
	"strings"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != 32 {
		t.Errorf("expected 32-byte key, got %d", len(key1))
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a := HashPassword([]byte("admin123"))
	b := HashPassword([]byte("admin123"))
	if a == b {
		t.Fatalf("expected different hashes for the same password")
	}
	if !strings.Contains(a, "$") {
		t.Fatalf("expected salt separator in %q", a)
	}
}

func TestVerifyPassword(t *testing.T) {
	encoded := HashPassword([]byte("admin123"))

	ok, err := VerifyPassword([]byte("admin123"), encoded)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = VerifyPassword([]byte("wrong"), encoded)
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, in := range []string{"", "nodollar", "zz$00", "00$zz"} {
		if _, err := VerifyPassword([]byte("x"), in); err != ErrMalformedHash {
			t.Errorf("%q: expected ErrMalformedHash, got %v", in, err)
		}
	}
}
