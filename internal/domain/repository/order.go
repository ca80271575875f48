package repository

import (
	"context"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	// ApplyTransition validates t and persists it only when the stored order still
	// has t.From status and t.ExpectedVersion.
	ApplyTransition(ctx context.Context, t model.Transition) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}
