package util

import (
	"crypto/rand"
	"math/big"
)

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomAlphanumeric returns n random uppercase alphanumeric characters
func RandomAlphanumeric(n int) string {
	result := make([]byte, n)
	max := big.NewInt(int64(len(orderIDAlphabet)))
	for i := range result {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		result[i] = orderIDAlphabet[idx.Int64()]
	}
	return string(result)
}
