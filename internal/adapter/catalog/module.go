package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/cafeorders/internal/config"
)

// Module exposes catalog client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.CatalogAddress == "" {
		p.Logger.Info("catalog address not configured, product images fall back to placeholder")
		return DisabledClient{}, nil
	}
	return NewHTTPClient(p.Config.CatalogAddress, p.Logger)
}
