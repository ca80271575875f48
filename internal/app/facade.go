package app

import (
	"context"

	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/usecase"
)

// HealthChecker reports readiness of a backing service.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CafeFacade exposes admin and customer operations to transports.
type CafeFacade struct {
	orders   *usecase.OrderUseCase
	tracking *usecase.TrackingUseCase
	health   HealthChecker
}

func NewCafeFacade(orders *usecase.OrderUseCase, tracking *usecase.TrackingUseCase, health HealthChecker) *CafeFacade {
	return &CafeFacade{orders: orders, tracking: tracking, health: health}
}

func (f *CafeFacade) Overview(ctx context.Context, search string) ([]model.Order, model.Stats, error) {
	return f.orders.Overview(ctx, search)
}

func (f *CafeFacade) Stats(ctx context.Context) (model.Stats, error) {
	return f.orders.Stats(ctx)
}

func (f *CafeFacade) Order(ctx context.Context, id int64) (*usecase.OrderDetail, error) {
	return f.orders.Get(ctx, id)
}

func (f *CafeFacade) UpdateOrder(ctx context.Context, id int64, req usecase.UpdateRequest) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, req)
}

func (f *CafeFacade) RequestDelete(ctx context.Context, id int64) (usecase.DeleteConfirmation, error) {
	return f.orders.RequestDelete(ctx, id)
}

func (f *CafeFacade) ConfirmDelete(ctx context.Context, id int64, token string) error {
	return f.orders.ConfirmDelete(ctx, id, token)
}

func (f *CafeFacade) Track(ctx context.Context, orderNumber string) (*usecase.TrackingView, error) {
	return f.tracking.Lookup(ctx, orderNumber)
}

func (f *CafeFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
