package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 10
)

// PrefixInvoice marks invoice numbers generated when a renewal has none.
const PrefixInvoice = "INV"

// Generate creates a random Base62 string of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix-randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "-" + id, nil
}

// NewInvoiceNo returns a fresh invoice number such as "INV-3fK9mP2vL3".
func NewInvoiceNo() (string, error) {
	return GenerateWithPrefix(PrefixInvoice, DefaultLength)
}

// HasPrefix reports whether prefixedID was produced by GenerateWithPrefix with prefix.
func HasPrefix(prefixedID, prefix string) bool {
	rest, ok := strings.CutPrefix(prefixedID, prefix+"-")
	return ok && rest != ""
}
