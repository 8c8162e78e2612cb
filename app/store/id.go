package store

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a random 24-character hex identifier.
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
