package test

import (
	"fmt"
	"math/rand/v2"
)

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns an alphanumeric string of length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = keyAlphabet[rand.IntN(len(keyAlphabet))]
	}
	return string(buf)
}

// RandomOrderNumber returns a storefront order number such as FC004217.
func RandomOrderNumber() string {
	return fmt.Sprintf("FC%06d", rand.IntN(1_000_000))
}
