package utils

import (
	"crypto/rand"
	"fmt"
)

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateRandomSuffix returns n cryptographically random characters from [0-9A-Z],
// suitable for the random tail of opaque document numbers.
func GenerateRandomSuffix(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("suffix length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = suffixAlphabet[int(b[i])%len(suffixAlphabet)]
	}
	return string(b), nil
}
