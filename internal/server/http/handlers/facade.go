package handlers

import (
	"context"

	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/usecase"
)

// OrderFacade encapsulates admin order operations exposed via HTTP.
type OrderFacade interface {
	Overview(ctx context.Context, search string) ([]model.Order, model.Stats, error)
	Stats(ctx context.Context) (model.Stats, error)
	Order(ctx context.Context, id int64) (*usecase.OrderDetail, error)
	UpdateOrder(ctx context.Context, id int64, req usecase.UpdateRequest) (*model.Order, error)
	RequestDelete(ctx context.Context, id int64) (usecase.DeleteConfirmation, error)
	ConfirmDelete(ctx context.Context, id int64, token string) error
}

// TrackingFacade provides customer order lookups.
type TrackingFacade interface {
	Track(ctx context.Context, orderNumber string) (*usecase.TrackingView, error)
}

// HealthChecker reports readiness of backing services.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CafeFacade aggregates the full set of operations used across handlers.
type CafeFacade interface {
	OrderFacade
	TrackingFacade
	HealthChecker
}
