package utils

import (
	"crypto/rand"
	"math/big"
)

const tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateToken returns a short uppercase alphanumeric token, the record ID
// format used across the dashboard.
func GenerateToken(length int) string {
	if length <= 0 {
		length = 6
	}

	token := make([]byte, length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand is not expected to fail; fall back to a fixed char
			token[i] = tokenAlphabet[0]
			continue
		}
		token[i] = tokenAlphabet[n.Int64()]
	}

	return string(token)
}
