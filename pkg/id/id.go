package id

import (
	"crypto/rand"
	"encoding/hex"
)

// New returns a 32-char lowercase hex identifier, used as the public ID
// for loans, disbursements, installments and payments.
func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
