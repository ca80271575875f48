package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidKey reports an admin key that does not match the configured hash.
var ErrInvalidKey = errors.New("invalid admin key")

// KeyVerifier checks admin keys presented by clients.
type KeyVerifier interface {
	// Enabled reports whether admin requests require a key at all.
	Enabled() bool
	Verify(key string) error
}

// BcryptVerifier compares keys against a bcrypt hash.
type BcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier creates verifier for hash. An empty hash disables verification.
func NewBcryptVerifier(hash string) (*BcryptVerifier, error) {
	if hash == "" {
		return &BcryptVerifier{}, nil
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("parse admin key hash: %w", err)
	}
	return &BcryptVerifier{hash: []byte(hash)}, nil
}

// Enabled reports whether a hash is configured.
func (v *BcryptVerifier) Enabled() bool {
	return len(v.hash) > 0
}

// Verify checks key against the configured hash.
func (v *BcryptVerifier) Verify(key string) error {
	if !v.Enabled() {
		return nil
	}
	if key == "" {
		return ErrInvalidKey
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(key)); err != nil {
		return ErrInvalidKey
	}
	return nil
}

// HashKey returns a bcrypt hash of key suitable for ADMIN_KEY_HASH.
func HashKey(key string, cost int) (string, error) {
	if key == "" {
		return "", errors.New("admin key must not be empty")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	encoded, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
