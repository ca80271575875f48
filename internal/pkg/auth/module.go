package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/cafeorders/internal/config"
)

// Module provides admin key verification via fx.
var Module = fx.Provide(newKeyVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newKeyVerifier(p verifierParams) (KeyVerifier, error) {
	return NewBcryptVerifier(p.Config.AdminKeyHash)
}
