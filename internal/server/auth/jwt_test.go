package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	email := "eve.holt@reqres.in"

	tok, err := GenerateToken(email, secret, time.Hour)
	require.NoError(t, err)

	got, err := GetEmailFromToken(tok, secret)
	require.NoError(t, err)
	require.Equal(t, email, got)
}

func TestGetEmailFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u@x.io", secret, -1*time.Second)
	require.NoError(t, err)

	_, err = GetEmailFromToken(tok, secret)
	require.Error(t, err)
	require.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestGetEmailFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u@x.io", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = GetEmailFromToken(tok, []byte("wrong-secret"))
	require.Error(t, err)
}

func TestGetEmailFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetEmailFromToken("not.a.jwt", []byte("k"))
	require.Error(t, err)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	a, err := GenerateToken("u@x.io", secret, time.Hour)
	require.NoError(t, err)
	b, err := GenerateToken("u@x.io", secret, time.Hour)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
