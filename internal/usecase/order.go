package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/domain/repository"
)

// OrderDetail is a single order with resolved item images.
type OrderDetail struct {
	Order *model.Order
	Items []ItemView
}

// OrderUseCase encapsulates admin order management.
type OrderUseCase struct {
	orders        repository.OrderRepository
	engine        *TransitionEngine
	confirmations *ConfirmationRegistry
	images        *ImageResolver
	logger        *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, engine *TransitionEngine, confirmations *ConfirmationRegistry, images *ImageResolver, logger *slog.Logger) *OrderUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderUseCase{
		orders:        orders,
		engine:        engine,
		confirmations: confirmations,
		images:        images,
		logger:        logger,
	}
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Search lists orders and filters them by term.
func (u *OrderUseCase) Search(ctx context.Context, term string) ([]model.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOrders(orders, term), nil
}

// Overview returns orders matching term and stats over every order.
func (u *OrderUseCase) Overview(ctx context.Context, term string) ([]model.Order, model.Stats, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, model.Stats{}, err
	}
	return FilterOrders(orders, term), model.ComputeStats(orders), nil
}

// Stats aggregates status buckets over all orders.
func (u *OrderUseCase) Stats(ctx context.Context) (model.Stats, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return model.ComputeStats(orders), nil
}

// Get returns order id with item images resolved.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*OrderDetail, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, Items: u.images.Items(ctx, order.Items)}, nil
}

// UpdateStatus applies an admin update through the transition engine.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, req UpdateRequest) (*model.Order, error) {
	return u.engine.Request(ctx, id, req)
}

// RequestDelete issues a confirmation token for deleting an existing order.
func (u *OrderUseCase) RequestDelete(ctx context.Context, id int64) (DeleteConfirmation, error) {
	if _, err := u.orders.GetByID(ctx, id); err != nil {
		return DeleteConfirmation{}, err
	}
	c := u.confirmations.Issue(id)
	u.logger.Info("order delete requested", slog.Int64("order_id", id), slog.Time("expires_at", c.ExpiresAt))
	return c, nil
}

// ConfirmDelete redeems token and permanently removes order id.
func (u *OrderUseCase) ConfirmDelete(ctx context.Context, id int64, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainErrors.ErrMissingConfirmation
	}
	if err := u.confirmations.Consume(id, token); err != nil {
		return err
	}
	if err := u.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	u.logger.Info("order deleted", slog.Int64("order_id", id))
	return nil
}
