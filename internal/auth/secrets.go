package auth

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// GenerateVerificationCode returns a 6-digit numeric email verification
// code in the range 100000-999999.
func GenerateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the platform is broken
		panic(err)
	}
	code := n.Int64() + 100000

	digits := make([]byte, 0, 6)
	for code > 0 {
		digits = append([]byte{byte('0' + code%10)}, digits...)
		code /= 10
	}
	return string(digits)
}

// GenerateResetToken returns a high-entropy hex token for password resets.
func GenerateResetToken() string {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
