package usecase

import (
	"context"
	"log/slog"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

// ProductCatalog resolves product reference data by id.
type ProductCatalog interface {
	Product(ctx context.Context, id string) (*model.ProductRef, error)
}

// ItemView is an order line together with the image to display for it.
type ItemView struct {
	model.OrderItem
	Image string
}

// ImageResolver picks the image for an order line: the embedded product image,
// then the catalog image, then the placeholder.
type ImageResolver struct {
	catalog     ProductCatalog
	placeholder string
	logger      *slog.Logger
}

// NewImageResolver constructs ImageResolver. A nil catalog skips lookups.
func NewImageResolver(catalog ProductCatalog, placeholder string, logger *slog.Logger) *ImageResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageResolver{catalog: catalog, placeholder: placeholder, logger: logger}
}

// Resolve returns the image for item.
func (r *ImageResolver) Resolve(ctx context.Context, item model.OrderItem) string {
	if item.Product.Image != "" {
		return item.Product.Image
	}
	if r.catalog == nil || item.Product.ID == "" {
		return r.placeholder
	}
	product, err := r.catalog.Product(ctx, item.Product.ID)
	if err != nil {
		r.logger.Debug("product image lookup failed",
			slog.String("product_id", item.Product.ID),
			slog.String("error", err.Error()))
		return r.placeholder
	}
	if product == nil || product.Image == "" {
		return r.placeholder
	}
	return product.Image
}

// Items resolves images for every line of items.
func (r *ImageResolver) Items(ctx context.Context, items []model.OrderItem) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{OrderItem: item, Image: r.Resolve(ctx, item)})
	}
	return views
}
