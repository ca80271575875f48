package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestRegistry(ttl time.Duration) (*ConfirmationRegistry, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	r := NewConfirmationRegistry(ttl)
	r.now = clock.Now
	seq := 0
	r.newToken = func() string {
		seq++
		return fmt.Sprintf("token-%d", seq)
	}
	return r, clock
}

func TestConfirmationRegistryIssueAndConsume(t *testing.T) {
	r, clock := newTestRegistry(time.Minute)

	c := r.Issue(5)
	if c.Token == "" || c.OrderID != 5 || !c.ExpiresAt.Equal(clock.now.Add(time.Minute)) {
		t.Fatalf("unexpected confirmation: %+v", c)
	}

	if err := r.Consume(5, c.Token); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	if err := r.Consume(5, c.Token); !errors.Is(err, domainErrors.ErrInvalidConfirmation) {
		t.Fatalf("expected token to be single-use, got %v", err)
	}
}

func TestConfirmationRegistryRejectsOtherOrder(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	c := r.Issue(5)

	if err := r.Consume(6, c.Token); !errors.Is(err, domainErrors.ErrInvalidConfirmation) {
		t.Fatalf("expected mismatch to be rejected, got %v", err)
	}
	if err := r.Consume(5, c.Token); err != nil {
		t.Fatalf("mismatched attempt must not consume token: %v", err)
	}
}

func TestConfirmationRegistryExpiry(t *testing.T) {
	r, clock := newTestRegistry(time.Minute)
	c := r.Issue(5)

	clock.now = clock.now.Add(time.Minute)
	if err := r.Consume(5, c.Token); !errors.Is(err, domainErrors.ErrInvalidConfirmation) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("expired token should be dropped on use")
	}
}

func TestConfirmationRegistryUnknownToken(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	if err := r.Consume(1, "nope"); !errors.Is(err, domainErrors.ErrInvalidConfirmation) {
		t.Fatalf("expected invalid confirmation, got %v", err)
	}
}

func TestConfirmationRegistryPurgeExpired(t *testing.T) {
	r, clock := newTestRegistry(time.Minute)
	r.Issue(1)
	r.Issue(2)
	clock.now = clock.now.Add(30 * time.Second)
	fresh := r.Issue(3)

	clock.now = clock.now.Add(45 * time.Second)
	if removed := r.PurgeExpired(); removed != 2 {
		t.Fatalf("expected 2 purged, got %d", removed)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 outstanding, got %d", r.Len())
	}
	if err := r.Consume(3, fresh.Token); err != nil {
		t.Fatalf("fresh token should survive purge: %v", err)
	}
}

func TestConfirmationRegistryDefaultTokensAreUnique(t *testing.T) {
	r := NewConfirmationRegistry(time.Minute)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		c := r.Issue(int64(i))
		if _, dup := seen[c.Token]; dup {
			t.Fatalf("duplicate token %s", c.Token)
		}
		seen[c.Token] = struct{}{}
	}
}
