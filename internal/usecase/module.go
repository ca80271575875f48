package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/cafeorders/internal/config"
	"github.com/polkiloo/cafeorders/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newConfirmationRegistry,
	newImageResolver,
	newTransitionEngine,
	NewOrderUseCase,
	NewTrackingUseCase,
)

func newConfirmationRegistry(cfg *config.Config) *ConfirmationRegistry {
	return NewConfirmationRegistry(cfg.DeleteConfirmTTL)
}

type imageParams struct {
	fx.In

	Config  *config.Config
	Catalog ProductCatalog
	Logger  *slog.Logger
}

func newImageResolver(p imageParams) *ImageResolver {
	return NewImageResolver(p.Catalog, p.Config.PlaceholderImage, p.Logger)
}

type engineParams struct {
	fx.In

	Orders   repository.OrderRepository
	Observer TransitionObserver `optional:"true"`
	Logger   *slog.Logger
}

func newTransitionEngine(p engineParams) *TransitionEngine {
	return NewTransitionEngine(p.Orders, p.Observer, p.Logger)
}
