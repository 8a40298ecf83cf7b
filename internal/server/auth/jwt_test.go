package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/shared"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("admin", secret, time.Hour)
	require.NoError(t, err)

	sub, err := SubjectFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestGenerateToken_SetsIssuedAndExpiry(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("admin", []byte("k"), time.Hour)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestSubjectFromToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("admin", []byte("secret"), -time.Second)
	require.NoError(t, err)

	_, err = SubjectFromToken(tok, []byte("secret"))
	assert.ErrorIs(t, err, shared.ErrorTokenExpired)
}

func TestSubjectFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("admin", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = SubjectFromToken(tok, []byte("wrong-secret"))
	assert.ErrorIs(t, err, shared.ErrorInvalidToken)
}

func TestSubjectFromToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := SubjectFromToken("not.a.jwt", []byte("k"))
	assert.ErrorIs(t, err, shared.ErrorInvalidToken)
}
