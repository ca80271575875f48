package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/domain/repository"
)

// TransitionObserver is notified after a status change has been persisted.
type TransitionObserver interface {
	ObserveTransition(from, to model.OrderStatus)
}

type noopObserver struct{}

func (noopObserver) ObserveTransition(model.OrderStatus, model.OrderStatus) {}

// UpdateRequest carries the optional fields of an admin update.
// Version, when set, must match the stored order version.
type UpdateRequest struct {
	Status  *model.OrderStatus
	Notes   *string
	Version *int64
}

// TransitionEngine validates and applies status changes.
type TransitionEngine struct {
	orders   repository.OrderRepository
	observer TransitionObserver
	logger   *slog.Logger
}

// NewTransitionEngine constructs TransitionEngine. A nil observer disables notifications.
func NewTransitionEngine(orders repository.OrderRepository, observer TransitionObserver, logger *slog.Logger) *TransitionEngine {
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TransitionEngine{orders: orders, observer: observer, logger: logger}
}

// Request moves order id according to req and returns the persisted order.
func (e *TransitionEngine) Request(ctx context.Context, id int64, req UpdateRequest) (*model.Order, error) {
	if req.Status == nil && req.Notes == nil {
		return nil, fmt.Errorf("%w: status or notes required", domainErrors.ErrValidation)
	}

	order, err := e.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Version != nil && *req.Version != order.Version {
		return nil, fmt.Errorf("%w: order %d is at version %d", domainErrors.ErrVersionConflict, id, order.Version)
	}

	t, err := model.PlanTransition(order, req.Status, req.Notes)
	if err != nil {
		return nil, err
	}

	updated, err := e.orders.ApplyTransition(ctx, t)
	if err != nil {
		e.logger.Warn("order transition rejected",
			slog.Int64("order_id", id),
			slog.String("from", string(t.From)),
			slog.String("to", string(t.To)),
			slog.String("error", err.Error()))
		return nil, err
	}

	if t.ChangesStatus() {
		e.observer.ObserveTransition(t.From, t.To)
		e.logger.Info("order status changed",
			slog.Int64("order_id", id),
			slog.String("order_number", updated.OrderNumber),
			slog.String("from", string(t.From)),
			slog.String("to", string(t.To)))
	} else {
		e.logger.Info("order notes updated", slog.Int64("order_id", id))
	}
	return updated, nil
}
