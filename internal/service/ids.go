package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	slugAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	slugLength   = 8
)

// NewSlug returns a random base62 slug for customer links.
func NewSlug() (string, error) {
	b := make([]byte, slugLength)
	max := big.NewInt(int64(len(slugAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate slug: %w", err)
		}
		b[i] = slugAlphabet[n.Int64()]
	}
	return string(b), nil
}

// NewOrderCode returns a code like CB2410181530 followed by two random digits.
func NewOrderCode(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		return "", fmt.Errorf("generate order code: %w", err)
	}
	return fmt.Sprintf("CB%s%02d", now.Format("0601021504"), n.Int64()), nil
}
