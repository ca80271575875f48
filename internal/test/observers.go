package test

import (
	"sync"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

// TransitionCall is a single observed status change.
type TransitionCall struct {
	From model.OrderStatus
	To   model.OrderStatus
}

// TransitionRecorder collects observed transitions.
type TransitionRecorder struct {
	mu   sync.Mutex
	Seen []TransitionCall
}

// ObserveTransition records the change.
func (r *TransitionRecorder) ObserveTransition(from, to model.OrderStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Seen = append(r.Seen, TransitionCall{From: from, To: to})
}
