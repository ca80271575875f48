// Package facade holds HTTP facade stubs shared by handler and router tests.
package facade

import (
	"context"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for admin order endpoints.
type OrderFacadeStub struct {
	OverviewFn      func(context.Context, string) ([]model.Order, model.Stats, error)
	StatsFn         func(context.Context) (model.Stats, error)
	OrderFn         func(context.Context, int64) (*usecase.OrderDetail, error)
	UpdateFn        func(context.Context, int64, usecase.UpdateRequest) (*model.Order, error)
	RequestDeleteFn func(context.Context, int64) (usecase.DeleteConfirmation, error)
	ConfirmDeleteFn func(context.Context, int64, string) error
}

// Overview delegates to provided function or returns an empty set.
func (s OrderFacadeStub) Overview(ctx context.Context, search string) ([]model.Order, model.Stats, error) {
	if s.OverviewFn != nil {
		return s.OverviewFn(ctx, search)
	}
	return nil, model.Stats{}, nil
}

// Stats delegates to provided function or returns zero stats.
func (s OrderFacadeStub) Stats(ctx context.Context) (model.Stats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return model.Stats{}, nil
}

// Order delegates to provided function or reports not found.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*usecase.OrderDetail, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateOrder delegates to provided function or echoes the requested status.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id int64, req usecase.UpdateRequest) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, req)
	}
	order := &model.Order{ID: id, Status: model.OrderStatusPending, Notes: req.Notes, Version: 2}
	if req.Status != nil {
		order.Status = *req.Status
	}
	return order, nil
}

// RequestDelete delegates to provided function or issues a fixed token.
func (s OrderFacadeStub) RequestDelete(ctx context.Context, id int64) (usecase.DeleteConfirmation, error) {
	if s.RequestDeleteFn != nil {
		return s.RequestDeleteFn(ctx, id)
	}
	return usecase.DeleteConfirmation{Token: "token", OrderID: id}, nil
}

// ConfirmDelete delegates to provided function or succeeds.
func (s OrderFacadeStub) ConfirmDelete(ctx context.Context, id int64, token string) error {
	if s.ConfirmDeleteFn != nil {
		return s.ConfirmDeleteFn(ctx, id, token)
	}
	return nil
}

// TrackingFacadeStub simulates customer lookups.
type TrackingFacadeStub struct {
	TrackFn func(context.Context, string) (*usecase.TrackingView, error)
}

// Track delegates to provided function or reports not found.
func (s TrackingFacadeStub) Track(ctx context.Context, orderNumber string) (*usecase.TrackingView, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, orderNumber)
	}
	return nil, domainErrors.ErrNotFound
}

// HealthCheckerStub returns Err from HealthCheck.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// CafeFacadeStub aggregates facade dependencies for HTTP layer tests.
type CafeFacadeStub struct {
	OrderFacadeStub
	TrackingFacadeStub
	HealthCheckerStub
}
