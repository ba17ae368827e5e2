package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for stored passwords
const BcryptCost = 12

// Hasher hashes and verifies passwords. The cost is a field so tests can use
// bcrypt.MinCost.
type Hasher struct {
	Cost int
}

// NewHasher returns a Hasher using BcryptCost
func NewHasher() *Hasher {
	return &Hasher{Cost: BcryptCost}
}

// HashPassword returns a salted bcrypt hash of password
func (h *Hasher) HashPassword(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = BcryptCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored hash
func (h *Hasher) CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
