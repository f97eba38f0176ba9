package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *TokenIssuer {
	return NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.IssueAccessToken("user-1", "candidate")
	require.NoError(t, err)

	claims, err := issuer.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "candidate", claims.Role)
}

func TestRefreshTokenNotValidAsAccessToken(t *testing.T) {
	issuer := newTestIssuer()

	refresh, err := issuer.IssueRefreshToken("user-1", "company")
	require.NoError(t, err)

	_, err = issuer.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := issuer.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("a", "r", -time.Minute, -time.Minute)

	token, err := issuer.IssueAccessToken("user-1", "candidate")
	require.NoError(t, err)

	_, err = issuer.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	issuer := newTestIssuer()
	other := NewTokenIssuer("different-secret", "refresh-secret", time.Minute, time.Minute)

	token, err := other.IssueAccessToken("user-1", "candidate")
	require.NoError(t, err)

	_, err = issuer.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.True(t, CheckPasswordHash("rahasia123", hash))
	assert.False(t, CheckPasswordHash("salah", hash))
}

func TestGenerateVerificationCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateVerificationCode()
		assert.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9', "code must be numeric: %s", code)
		}
	}
}

func TestGenerateResetToken(t *testing.T) {
	a := GenerateResetToken()
	b := GenerateResetToken()

	assert.Len(t, a, 40) // 20 bytes hex encoded
	assert.NotEqual(t, a, b)
}
