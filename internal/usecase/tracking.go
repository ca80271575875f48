package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/domain/repository"
)

// TrackingView is the read-only projection shown to a customer.
type TrackingView struct {
	Order            *model.Order
	Badge            model.Badge
	Items            []ItemView
	GrandTotal       decimal.Decimal
	TotalsConsistent bool
}

// TrackingUseCase serves customer order lookups.
type TrackingUseCase struct {
	orders repository.OrderRepository
	images *ImageResolver
	logger *slog.Logger
}

// NewTrackingUseCase constructs TrackingUseCase.
func NewTrackingUseCase(orders repository.OrderRepository, images *ImageResolver, logger *slog.Logger) *TrackingUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackingUseCase{orders: orders, images: images, logger: logger}
}

// Lookup finds an order by its customer-facing number.
func (u *TrackingUseCase) Lookup(ctx context.Context, orderNumber string) (*TrackingView, error) {
	number, err := NormalizeOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	view := &TrackingView{
		Order:            order,
		Badge:            model.BadgeFor(order.Status),
		Items:            u.images.Items(ctx, order.Items),
		GrandTotal:       model.SumItems(order.Items),
		TotalsConsistent: true,
	}
	if err := order.CheckTotals(); err != nil {
		view.TotalsConsistent = false
		u.logger.Error("order totals inconsistent",
			slog.String("order_number", order.OrderNumber),
			slog.String("stored_total", order.TotalAmount.String()),
			slog.String("computed_total", view.GrandTotal.String()),
			slog.String("error", err.Error()))
	}
	return view, nil
}
