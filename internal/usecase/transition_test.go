package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/domain/model"
	testhelpers "github.com/polkiloo/cafeorders/internal/test"
)

func TestTransitionEngineScenario(t *testing.T) {
	repo := testhelpers.NewMemoryOrderRepository(latteOrder(1, "FC000001", model.OrderStatusPending))
	recorder := &testhelpers.TransitionRecorder{}
	engine := NewTransitionEngine(repo, recorder, discardLogger())
	ctx := context.Background()

	for _, step := range []model.OrderStatus{model.OrderStatusConfirmed, model.OrderStatusPreparing} {
		if _, err := engine.Request(ctx, 1, UpdateRequest{Status: statusPtr(step)}); err != nil {
			t.Fatalf("transition to %s failed: %v", step, err)
		}
	}

	if _, err := engine.Request(ctx, 1, UpdateRequest{Status: statusPtr(model.OrderStatusDelivered)}); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition skipping ready, got %v", err)
	}

	order, err := engine.Request(ctx, 1, UpdateRequest{Status: statusPtr(model.OrderStatusCancelled)})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if order.Status != model.OrderStatusCancelled || order.Version != 4 {
		t.Fatalf("unexpected order after cancel: status=%s version=%d", order.Status, order.Version)
	}

	if _, err := engine.Request(ctx, 1, UpdateRequest{Status: statusPtr(model.OrderStatusPending)}); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected terminal order to reject transitions, got %v", err)
	}

	want := []testhelpers.TransitionCall{
		{From: model.OrderStatusPending, To: model.OrderStatusConfirmed},
		{From: model.OrderStatusConfirmed, To: model.OrderStatusPreparing},
		{From: model.OrderStatusPreparing, To: model.OrderStatusCancelled},
	}
	if len(recorder.Seen) != len(want) {
		t.Fatalf("expected %d observed transitions, got %v", len(want), recorder.Seen)
	}
	for i := range want {
		if recorder.Seen[i] != want[i] {
			t.Fatalf("observed transition %d = %v, want %v", i, recorder.Seen[i], want[i])
		}
	}
}

func TestTransitionEngineNotesOnly(t *testing.T) {
	repo := testhelpers.NewMemoryOrderRepository(latteOrder(1, "FC1", model.OrderStatusDelivered))
	recorder := &testhelpers.TransitionRecorder{}
	engine := NewTransitionEngine(repo, recorder, discardLogger())

	order, err := engine.Request(context.Background(), 1, UpdateRequest{Notes: strPtr("left at the door")})
	if err != nil {
		t.Fatalf("notes update failed: %v", err)
	}
	if order.Status != model.OrderStatusDelivered || order.Notes == nil || *order.Notes != "left at the door" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(recorder.Seen) != 0 {
		t.Fatalf("notes-only update must not be observed as transition")
	}
}

func TestTransitionEngineRejectsEmptyRequest(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	engine := NewTransitionEngine(repo, nil, discardLogger())

	if _, err := engine.Request(context.Background(), 1, UpdateRequest{}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.Transitions) != 0 {
		t.Fatalf("repository must not be touched")
	}
}

func TestTransitionEngineUnknownStatus(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Orders: []model.Order{latteOrder(1, "FC1", model.OrderStatusPending)}}
	engine := NewTransitionEngine(repo, nil, discardLogger())

	if _, err := engine.Request(context.Background(), 1, UpdateRequest{Status: statusPtr("Confirmed")}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for case-mismatched status, got %v", err)
	}
	if len(repo.Transitions) != 0 {
		t.Fatalf("repository must not be touched")
	}
}

func TestTransitionEngineNotFound(t *testing.T) {
	engine := NewTransitionEngine(testhelpers.NewMemoryOrderRepository(), nil, discardLogger())

	if _, err := engine.Request(context.Background(), 9, UpdateRequest{Status: statusPtr(model.OrderStatusConfirmed)}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTransitionEngineExpectedVersion(t *testing.T) {
	repo := testhelpers.NewMemoryOrderRepository(latteOrder(1, "FC1", model.OrderStatusPending))
	engine := NewTransitionEngine(repo, nil, discardLogger())
	ctx := context.Background()

	if _, err := engine.Request(ctx, 1, UpdateRequest{Status: statusPtr(model.OrderStatusConfirmed), Version: int64Ptr(7)}); !errors.Is(err, domainErrors.ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}

	order, err := engine.Request(ctx, 1, UpdateRequest{Status: statusPtr(model.OrderStatusConfirmed), Version: int64Ptr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Version != 2 {
		t.Fatalf("expected version 2, got %d", order.Version)
	}
}

func TestTransitionEnginePropagatesRepositoryConflict(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{latteOrder(1, "FC1", model.OrderStatusPending)},
		ApplyTransitionFn: func(context.Context, model.Transition) (*model.Order, error) {
			return nil, domainErrors.ErrVersionConflict
		},
	}
	recorder := &testhelpers.TransitionRecorder{}
	engine := NewTransitionEngine(repo, recorder, discardLogger())

	if _, err := engine.Request(context.Background(), 1, UpdateRequest{Status: statusPtr(model.OrderStatusConfirmed)}); !errors.Is(err, domainErrors.ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}
	if len(recorder.Seen) != 0 {
		t.Fatalf("failed transition must not be observed")
	}
	if repo.Transitions[0].ExpectedVersion != 1 || repo.Transitions[0].From != model.OrderStatusPending {
		t.Fatalf("unexpected transition: %+v", repo.Transitions[0])
	}
}

func TestTransitionEngineConcurrentUpdates(t *testing.T) {
	for run := 0; run < 50; run++ {
		repo := testhelpers.NewMemoryOrderRepository(latteOrder(1, "FC1", model.OrderStatusPending))
		engine := NewTransitionEngine(repo, nil, discardLogger())

		targets := []model.OrderStatus{model.OrderStatusConfirmed, model.OrderStatusCancelled}
		errs := make([]error, len(targets))
		var wg sync.WaitGroup
		for i, target := range targets {
			wg.Add(1)
			go func(i int, target model.OrderStatus) {
				defer wg.Done()
				_, errs[i] = engine.Request(context.Background(), 1, UpdateRequest{Status: statusPtr(target)})
			}(i, target)
		}
		wg.Wait()

		order, err := repo.GetByID(context.Background(), 1)
		if err != nil {
			t.Fatalf("get order: %v", err)
		}

		successes := 0
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainErrors.ErrVersionConflict), errors.Is(err, domainErrors.ErrInvalidTransition):
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}

		switch successes {
		case 1:
			if order.Version != 2 {
				t.Fatalf("expected single persisted change, version=%d", order.Version)
			}
			if order.Status != model.OrderStatusConfirmed && order.Status != model.OrderStatusCancelled {
				t.Fatalf("unexpected final status %s", order.Status)
			}
		case 2:
			// confirmed landed first, cancel then applied on top of it.
			if order.Status != model.OrderStatusCancelled || order.Version != 3 {
				t.Fatalf("unexpected serialized outcome: status=%s version=%d", order.Status, order.Version)
			}
		default:
			t.Fatalf("expected at least one success, got errors %v", errs)
		}
	}
}
