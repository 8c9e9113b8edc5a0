// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
)

func GenerateRandomString(length int, charset string) (string, error) {
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateOrderNumber produces numbers like "OR-482915" for payloads
// that omit one.
func GenerateOrderNumber() (string, error) {
	digits, err := GenerateRandomString(6, "0123456789")
	if err != nil {
		return "", err
	}
	return "OR-" + digits, nil
}
