package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/cafeorders/internal/adapter/catalog"
	"github.com/polkiloo/cafeorders/internal/app"
	"github.com/polkiloo/cafeorders/internal/config"
	"github.com/polkiloo/cafeorders/internal/logger"
	"github.com/polkiloo/cafeorders/internal/metrics"
	"github.com/polkiloo/cafeorders/internal/pkg/auth"
	"github.com/polkiloo/cafeorders/internal/server/http/handlers"
	"github.com/polkiloo/cafeorders/internal/server/http/router"
	"github.com/polkiloo/cafeorders/internal/storage/postgres"
	"github.com/polkiloo/cafeorders/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		metrics.Module,
		postgres.Module,
		catalog.Module,
		usecase.Module,
		fx.Provide(
			func(client catalog.Client) usecase.ProductCatalog { return client },
			func(m *metrics.Metrics) usecase.TransitionObserver { return m },
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(f *app.CafeFacade) handlers.CafeFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
