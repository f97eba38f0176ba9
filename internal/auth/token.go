package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by both access and refresh tokens. Tokens are stateless:
// there is no server-side revocation list.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies the signed access/refresh token pair.
// Access and refresh tokens use separate secrets so one cannot stand in
// for the other.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccessToken returns a short-lived access token for the user.
func (t *TokenIssuer) IssueAccessToken(userID, role string) (string, error) {
	return t.sign(userID, role, t.accessSecret, t.accessTTL)
}

// IssueRefreshToken returns a longer-lived refresh token for the user.
func (t *TokenIssuer) IssueRefreshToken(userID, role string) (string, error) {
	return t.sign(userID, role, t.refreshSecret, t.refreshTTL)
}

// ParseAccessToken verifies signature and expiry of an access token.
func (t *TokenIssuer) ParseAccessToken(tokenStr string) (*Claims, error) {
	return t.parse(tokenStr, t.accessSecret)
}

// ParseRefreshToken verifies signature and expiry of a refresh token.
func (t *TokenIssuer) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return t.parse(tokenStr, t.refreshSecret)
}

func (t *TokenIssuer) sign(userID, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (t *TokenIssuer) parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
