package client

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/server/http/dto"
)

// Tracking looks up orders for customers.
type Tracking struct {
	api *API
}

// NewTracking constructs Tracking.
func NewTracking(api *API) *Tracking {
	return &Tracking{api: api}
}

// Lookup fetches the order with orderNumber. Blank input is rejected without a request.
func (t *Tracking) Lookup(ctx context.Context, orderNumber string) (*dto.TrackingView, error) {
	number := strings.TrimSpace(orderNumber)
	if number == "" {
		return nil, fmt.Errorf("%w: please enter an order number", domainErrors.ErrValidation)
	}
	view, err := t.api.TrackOrder(ctx, number)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
