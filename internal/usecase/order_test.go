package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/domain/repository"
	testhelpers "github.com/polkiloo/cafeorders/internal/test"
)

func newOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	logger := discardLogger()
	return NewOrderUseCase(
		repo,
		NewTransitionEngine(repo, nil, logger),
		NewConfirmationRegistry(time.Minute),
		NewImageResolver(nil, "/p.png", logger),
		logger,
	)
}

func seededRepository() *testhelpers.MemoryOrderRepository {
	a := latteOrder(1, "FC000001", model.OrderStatusPending)
	b := latteOrder(2, "FC000002", model.OrderStatusPreparing)
	b.Customer.Name = "Grace Hopper"
	b.Customer.Email = "grace@navy.mil"
	c := latteOrder(3, "FC000003", model.OrderStatusDelivered)
	return testhelpers.NewMemoryOrderRepository(a, b, c)
}

func TestOrderUseCaseList(t *testing.T) {
	uc := newOrderUseCase(seededRepository())

	orders, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(orders); len(got) != 3 || got[0] != 3 || got[2] != 1 {
		t.Fatalf("expected newest first, got %v", got)
	}
}

func TestOrderUseCaseSearch(t *testing.T) {
	uc := newOrderUseCase(seededRepository())

	orders, err := uc.Search(context.Background(), "GRACE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(orders); len(got) != 1 || got[0] != 2 {
		t.Fatalf("unexpected search result %v", got)
	}
}

func TestOrderUseCaseSearchError(t *testing.T) {
	boom := errors.New("db down")
	uc := newOrderUseCase(&testhelpers.OrderRepositoryStub{ListFn: func(context.Context) ([]model.Order, error) {
		return nil, boom
	}})
	if _, err := uc.Search(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected list error, got %v", err)
	}
}

func TestOrderUseCaseStats(t *testing.T) {
	uc := newOrderUseCase(seededRepository())

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Stats{Pending: 1, InProgress: 1, Completed: 1, Total: 3}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
}

func TestOrderUseCaseGet(t *testing.T) {
	uc := newOrderUseCase(seededRepository())

	detail, err := uc.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Order.ID != 2 || len(detail.Items) != 1 || detail.Items[0].Image != "/p.png" {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	if _, err := uc.Get(context.Background(), 42); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseUpdateStatus(t *testing.T) {
	uc := newOrderUseCase(seededRepository())

	order, err := uc.UpdateStatus(context.Background(), 2, UpdateRequest{Status: statusPtr(model.OrderStatusReady), Notes: strPtr("extra hot")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusReady || *order.Notes != "extra hot" {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderUseCaseDeleteFlow(t *testing.T) {
	repo := seededRepository()
	uc := newOrderUseCase(repo)
	ctx := context.Background()

	c, err := uc.RequestDelete(ctx, 1)
	if err != nil {
		t.Fatalf("request delete failed: %v", err)
	}
	if c.OrderID != 1 || c.Token == "" {
		t.Fatalf("unexpected confirmation: %+v", c)
	}

	if err := uc.ConfirmDelete(ctx, 1, c.Token); err != nil {
		t.Fatalf("confirm delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("order should be gone, got %v", err)
	}

	if _, err := uc.RequestDelete(ctx, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("second delete request should report not found, got %v", err)
	}
}

func TestOrderUseCaseDeleteTwiceWithOutstandingToken(t *testing.T) {
	uc := newOrderUseCase(seededRepository())
	ctx := context.Background()

	first, _ := uc.RequestDelete(ctx, 3)
	second, _ := uc.RequestDelete(ctx, 3)

	if err := uc.ConfirmDelete(ctx, 3, first.Token); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := uc.ConfirmDelete(ctx, 3, second.Token); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestOrderUseCaseConfirmDeleteErrors(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{latteOrder(1, "FC1", model.OrderStatusPending)}}
	uc := newOrderUseCase(repo)
	ctx := context.Background()

	if err := uc.ConfirmDelete(ctx, 1, "  "); !errors.Is(err, domainErrors.ErrMissingConfirmation) {
		t.Fatalf("expected missing confirmation, got %v", err)
	}
	if err := uc.ConfirmDelete(ctx, 1, "forged"); !errors.Is(err, domainErrors.ErrInvalidConfirmation) {
		t.Fatalf("expected invalid confirmation, got %v", err)
	}
	if len(repo.Deleted) != 0 {
		t.Fatalf("repository delete must not be called without a valid token")
	}

	c, err := uc.RequestDelete(ctx, 1)
	if err != nil {
		t.Fatalf("request delete failed: %v", err)
	}
	if err := uc.ConfirmDelete(ctx, 2, c.Token); !errors.Is(err, domainErrors.ErrInvalidConfirmation) {
		t.Fatalf("expected token for another order to be rejected, got %v", err)
	}
	if err := uc.ConfirmDelete(ctx, 1, c.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Deleted) != 1 || repo.Deleted[0] != 1 {
		t.Fatalf("unexpected deletions %v", repo.Deleted)
	}
}

func TestOrderUseCaseOverview(t *testing.T) {
	uc := newOrderUseCase(seededRepository())

	orders, stats, err := uc.Overview(context.Background(), "FC000002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(orders); len(got) != 1 || got[0] != 2 {
		t.Fatalf("unexpected filtered orders %v", got)
	}
	if stats.Total != 3 {
		t.Fatalf("stats must cover all orders, got %+v", stats)
	}
}
