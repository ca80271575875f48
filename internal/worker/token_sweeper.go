package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TokenStore exposes expiry cleanup of outstanding confirmation tokens.
type TokenStore interface {
	PurgeExpired() int
}

// TokenSweeper periodically drops expired delete confirmation tokens.
type TokenSweeper struct {
	store    TokenStore
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewTokenSweeper constructs sweeper running every interval.
func NewTokenSweeper(store TokenStore, interval time.Duration, logger *slog.Logger) *TokenSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &TokenSweeper{store: store, interval: interval, logger: logger}
}

// Start launches background sweeping. Repeated calls are ignored until Stop.
func (s *TokenSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *TokenSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *TokenSweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *TokenSweeper) sweep() {
	if removed := s.store.PurgeExpired(); removed > 0 {
		s.logger.Debug("expired delete confirmations purged", slog.Int("count", removed))
	}
}
