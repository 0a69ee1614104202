// Package crypto provides credential hashing for stored passwords.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes plaintext passwords for storage and verifies them on login.
type Hasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// BcryptHasher implements Hasher using bcrypt with a configurable cost.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
