package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
)

// DeleteConfirmation is a single-use token authorizing deletion of one order.
type DeleteConfirmation struct {
	Token     string
	OrderID   int64
	ExpiresAt time.Time
}

// ConfirmationRegistry keeps outstanding delete confirmations in memory.
type ConfirmationRegistry struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
	pending  map[string]DeleteConfirmation
}

// NewConfirmationRegistry constructs registry issuing tokens valid for ttl.
func NewConfirmationRegistry(ttl time.Duration) *ConfirmationRegistry {
	return &ConfirmationRegistry{
		ttl:      ttl,
		now:      time.Now,
		newToken: uuid.NewString,
		pending:  make(map[string]DeleteConfirmation),
	}
}

// Issue creates a confirmation bound to orderID.
func (r *ConfirmationRegistry) Issue(orderID int64) DeleteConfirmation {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := DeleteConfirmation{
		Token:     r.newToken(),
		OrderID:   orderID,
		ExpiresAt: r.now().Add(r.ttl),
	}
	r.pending[c.Token] = c
	return c
}

// Consume redeems token for orderID. A token issued for another order stays valid.
func (r *ConfirmationRegistry) Consume(orderID int64, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.pending[token]
	if !ok {
		return fmt.Errorf("%w: unknown token", domainErrors.ErrInvalidConfirmation)
	}
	if !r.now().Before(c.ExpiresAt) {
		delete(r.pending, token)
		return fmt.Errorf("%w: token expired", domainErrors.ErrInvalidConfirmation)
	}
	if c.OrderID != orderID {
		return fmt.Errorf("%w: token issued for another order", domainErrors.ErrInvalidConfirmation)
	}
	delete(r.pending, token)
	return nil
}

// PurgeExpired drops expired confirmations and returns how many were removed.
func (r *ConfirmationRegistry) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for token, c := range r.pending {
		if !now.Before(c.ExpiresAt) {
			delete(r.pending, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of outstanding confirmations.
func (r *ConfirmationRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
