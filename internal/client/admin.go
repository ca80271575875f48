package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/server/http/dto"
	"github.com/polkiloo/cafeorders/internal/usecase"
)

// ErrInFlight is returned when a mutation for the same order is still running.
var ErrInFlight = errors.New("request already in progress")

// AdminSurface keeps a local copy of all orders and applies admin actions to it.
// Mutations merge the server's answer by id instead of reloading the list.
type AdminSurface struct {
	api      *API
	notifier Notifier

	mu       sync.Mutex
	orders   map[int64]model.Order
	inFlight map[int64]struct{}
}

// NewAdminSurface constructs AdminSurface. A nil notifier discards notices.
func NewAdminSurface(api *API, notifier Notifier) *AdminSurface {
	if notifier == nil {
		notifier = NotifierFunc(func(Notice) {})
	}
	return &AdminSurface{
		api:      api,
		notifier: notifier,
		orders:   make(map[int64]model.Order),
		inFlight: make(map[int64]struct{}),
	}
}

// Refresh replaces the local set with the server's full order list.
func (s *AdminSurface) Refresh(ctx context.Context) error {
	orders, _, err := s.api.ListOrders(ctx, "")
	if err != nil {
		s.fail("Failed to load orders", err)
		return err
	}

	fresh := make(map[int64]model.Order, len(orders))
	for _, o := range orders {
		fresh[o.ID] = o.ToOrder()
	}

	s.mu.Lock()
	s.orders = fresh
	s.mu.Unlock()
	return nil
}

// Orders returns the local set, newest first.
func (s *AdminSurface) Orders() []model.Order {
	s.mu.Lock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Search filters the local set by order number, customer name or email.
func (s *AdminSurface) Search(term string) []model.Order {
	return usecase.FilterOrders(s.Orders(), term)
}

// Stats aggregates the local set.
func (s *AdminSurface) Stats() model.Stats {
	return model.ComputeStats(s.Orders())
}

// View fetches one order with resolved item images and merges it locally.
func (s *AdminSurface) View(ctx context.Context, id int64) (dto.Order, error) {
	order, err := s.api.Order(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			s.forget(id)
		}
		s.fail("Failed to load order", err)
		return dto.Order{}, err
	}
	s.merge(order.ToOrder())
	return order, nil
}

// UpdateStatus moves order id to status, optionally replacing notes. The locally
// known version is sent so concurrent edits are rejected by the server.
func (s *AdminSurface) UpdateStatus(ctx context.Context, id int64, status *model.OrderStatus, notes *string) (*model.Order, error) {
	if err := s.begin(id); err != nil {
		s.fail("Order update", err)
		return nil, err
	}
	defer s.end(id)

	req := dto.UpdateOrderRequest{Notes: notes}
	if status != nil {
		literal := string(*status)
		req.Status = &literal
	}
	if current, ok := s.lookup(id); ok {
		version := current.Version
		req.Version = &version
	}

	resp, err := s.api.UpdateOrder(ctx, id, req)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			s.forget(id)
		}
		s.fail("Failed to update order", err)
		return nil, err
	}

	order := resp.ToOrder()
	s.merge(order)
	s.notifier.Notify(Notice{Kind: NoticeSuccess, Message: "Order updated"})
	return &order, nil
}

// RequestDelete asks for a confirmation token for deleting order id.
func (s *AdminSurface) RequestDelete(ctx context.Context, id int64) (dto.DeleteConfirmation, error) {
	if err := s.begin(id); err != nil {
		s.fail("Order delete", err)
		return dto.DeleteConfirmation{}, err
	}
	defer s.end(id)

	confirmation, err := s.api.RequestDelete(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			s.forget(id)
		}
		s.fail("Failed to delete order", err)
		return dto.DeleteConfirmation{}, err
	}
	return confirmation, nil
}

// ConfirmDelete permanently deletes order id and drops it from the local set.
func (s *AdminSurface) ConfirmDelete(ctx context.Context, id int64, token string) error {
	if err := s.begin(id); err != nil {
		s.fail("Order delete", err)
		return err
	}
	defer s.end(id)

	if err := s.api.DeleteOrder(ctx, id, token); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			s.forget(id)
		}
		s.fail("Failed to delete order", err)
		return err
	}
	s.forget(id)
	s.notifier.Notify(Notice{Kind: NoticeSuccess, Message: "Order deleted"})
	return nil
}

func (s *AdminSurface) begin(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return fmt.Errorf("%w: order %d", ErrInFlight, id)
	}
	s.inFlight[id] = struct{}{}
	return nil
}

func (s *AdminSurface) end(id int64) {
	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()
}

func (s *AdminSurface) lookup(id int64) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *AdminSurface) merge(o model.Order) {
	s.mu.Lock()
	s.orders[o.ID] = o
	s.mu.Unlock()
}

func (s *AdminSurface) forget(id int64) {
	s.mu.Lock()
	delete(s.orders, id)
	s.mu.Unlock()
}

func (s *AdminSurface) fail(action string, err error) {
	message := failureMessage(err)
	if errors.Is(err, ErrInFlight) {
		message = action + ": " + message
	}
	s.notifier.Notify(Notice{Kind: NoticeError, Message: message})
}
