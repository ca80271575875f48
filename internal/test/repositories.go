package test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
)

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	ListFn            func(context.Context) ([]model.Order, error)
	GetByIDFn         func(context.Context, int64) (*model.Order, error)
	GetByNumberFn     func(context.Context, string) (*model.Order, error)
	ApplyTransitionFn func(context.Context, model.Transition) (*model.Order, error)
	DeleteFn          func(context.Context, int64) error

	Orders      []model.Order
	Transitions []model.Transition
	Deleted     []int64
}

// List returns configured orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByNumber returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	for _, o := range s.Orders {
		if o.OrderNumber == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ApplyTransition records transitions and returns configured result.
func (s *OrderRepositoryStub) ApplyTransition(ctx context.Context, t model.Transition) (*model.Order, error) {
	s.Transitions = append(s.Transitions, t)
	if s.ApplyTransitionFn != nil {
		return s.ApplyTransitionFn(ctx, t)
	}
	return &model.Order{ID: t.OrderID, Status: t.To, Notes: t.Notes, Version: t.ExpectedVersion + 1}, nil
}

// Delete records deletions.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.Deleted = append(s.Deleted, id)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// MemoryOrderRepository is a goroutine-safe in-memory order store with the same
// conditional update semantics as the PostgreSQL repository.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[int64]model.Order
	now    func() time.Time
}

// NewMemoryOrderRepository seeds repository with orders.
func NewMemoryOrderRepository(orders ...model.Order) *MemoryOrderRepository {
	r := &MemoryOrderRepository{orders: make(map[int64]model.Order), now: time.Now}
	for _, o := range orders {
		if o.Version == 0 {
			o.Version = 1
		}
		r.orders[o.ID] = o
	}
	return r
}

// List returns orders newest first.
func (r *MemoryOrderRepository) List(context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// GetByID returns a copy of order id.
func (r *MemoryOrderRepository) GetByID(_ context.Context, id int64) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &o, nil
}

// GetByNumber returns a copy of the order with number.
func (r *MemoryOrderRepository) GetByNumber(_ context.Context, number string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.OrderNumber == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ApplyTransition persists t when status and version still match.
func (r *MemoryOrderRepository) ApplyTransition(_ context.Context, t model.Transition) (*model.Order, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[t.OrderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.Status != t.From || o.Version != t.ExpectedVersion {
		return nil, fmt.Errorf("%w: order %d", domainErrors.ErrVersionConflict, t.OrderID)
	}
	o.Status = t.To
	if t.Notes != nil {
		notes := *t.Notes
		o.Notes = &notes
	}
	o.Version++
	o.UpdatedAt = r.now()
	r.orders[o.ID] = o
	return &o, nil
}

// Delete removes order id.
func (r *MemoryOrderRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}
