package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	testhelpers "github.com/polkiloo/cafeorders/internal/test"
	"github.com/polkiloo/cafeorders/internal/usecase"
)

type healthStub struct{ err error }

func (h healthStub) HealthCheck(context.Context) error { return h.err }

func newTestFacade(health HealthChecker, orders ...model.Order) (*CafeFacade, *testhelpers.TransitionRecorder) {
	repo := testhelpers.NewMemoryOrderRepository(orders...)
	logger := discardLogger()
	recorder := &testhelpers.TransitionRecorder{}
	images := usecase.NewImageResolver(nil, "/p.png", logger)
	orderUC := usecase.NewOrderUseCase(repo, usecase.NewTransitionEngine(repo, recorder, logger), usecase.NewConfirmationRegistry(time.Minute), images, logger)
	trackingUC := usecase.NewTrackingUseCase(repo, images, logger)
	return NewCafeFacade(orderUC, trackingUC, health), recorder
}

func facadeOrder(id int64, number string) model.Order {
	items := []model.OrderItem{model.NewOrderItem(model.ProductRef{ID: "espresso"}, "Espresso", decimal.NewFromInt(3), 1)}
	return model.Order{ID: id, OrderNumber: number, Items: items, TotalAmount: model.SumItems(items), Status: model.OrderStatusPending, Version: 1}
}

func TestCafeFacadeAdminFlow(t *testing.T) {
	facade, recorder := newTestFacade(healthStub{}, facadeOrder(1, "FC1"), facadeOrder(2, "FC2"))
	ctx := context.Background()

	orders, stats, err := facade.Overview(ctx, "fc2")
	if err != nil || len(orders) != 1 || stats.Total != 2 || stats.Pending != 2 {
		t.Fatalf("unexpected overview: %v %+v %v", orders, stats, err)
	}

	target := model.OrderStatusConfirmed
	updated, err := facade.UpdateOrder(ctx, 1, usecase.UpdateRequest{Status: &target})
	if err != nil || updated.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected update: %+v %v", updated, err)
	}
	if len(recorder.Seen) != 1 {
		t.Fatalf("expected transition to be observed")
	}

	stats, err = facade.Stats(ctx)
	if err != nil || stats.InProgress != 1 || stats.Pending != 1 {
		t.Fatalf("unexpected stats %+v %v", stats, err)
	}

	detail, err := facade.Order(ctx, 1)
	if err != nil || detail.Items[0].Image != "/p.png" {
		t.Fatalf("unexpected detail %+v %v", detail, err)
	}

	c, err := facade.RequestDelete(ctx, 2)
	if err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if err := facade.ConfirmDelete(ctx, 2, c.Token); err != nil {
		t.Fatalf("confirm delete: %v", err)
	}
	if _, err := facade.Order(ctx, 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected deleted order to be gone, got %v", err)
	}
}

func TestCafeFacadeTrackAndHealth(t *testing.T) {
	boom := errors.New("db down")
	facade, _ := newTestFacade(healthStub{err: boom}, facadeOrder(1, "FC1"))

	view, err := facade.Track(context.Background(), "FC1")
	if err != nil || view.Badge.Label != "Pending" {
		t.Fatalf("unexpected tracking view %+v %v", view, err)
	}
	if err := facade.HealthCheck(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected health error, got %v", err)
	}
}
