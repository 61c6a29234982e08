// Package passgen suggests random passwords.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
)

// Charset is the alphabet suggestions are drawn from.
const Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890!@#$%^&*()_+"

// DefaultLength is used when no length is requested.
const DefaultLength = 16

// MaxLength bounds a single suggestion.
const MaxLength = 4096

// Suggest returns a password of length characters chosen uniformly from
// Charset.
func Suggest(length int) (string, error) {
	return SuggestFrom(Charset, length)
}

// SuggestFrom returns a password of length characters chosen uniformly
// from charset.
func SuggestFrom(charset string, length int) (string, error) {
	if length < 1 || length > MaxLength {
		return "", lerrors.Validation("length", fmt.Sprintf("must be between 1 and %d", MaxLength))
	}
	if charset == "" {
		return "", lerrors.Validation("charset", "must not be empty")
	}

	alphabet := []rune(charset)
	limit := big.NewInt(int64(len(alphabet)))
	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
