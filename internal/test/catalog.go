package test

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

// CatalogStub serves products from a map and counts lookups.
type CatalogStub struct {
	Products map[string]model.ProductRef
	Err      error
	Calls    atomic.Int64
}

// Product returns configured product or an error.
func (c *CatalogStub) Product(_ context.Context, id string) (*model.ProductRef, error) {
	c.Calls.Add(1)
	if c.Err != nil {
		return nil, c.Err
	}
	if p, ok := c.Products[id]; ok {
		return &p, nil
	}
	return nil, errors.New("product not found")
}
