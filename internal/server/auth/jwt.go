// Package auth issues and checks the bearer tokens of the development API.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the standard registered claims; the subject is the admin
// username.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for subject valid for ttl.
func GenerateToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// SubjectFromToken verifies tokenString and returns its subject.
// Expired tokens yield shared.ErrorTokenExpired, anything else that fails
// verification yields shared.ErrorInvalidToken.
func SubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", shared.ErrorTokenExpired
		}
		return "", shared.ErrorInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", shared.ErrorInvalidToken
	}

	return claims.Subject, nil
}
