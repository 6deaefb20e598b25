package bootstrap

import (
	"log/slog"

	"staykit/internal/auth"
	"staykit/internal/cache"
	"staykit/internal/pkg/clock"
	"staykit/internal/pkg/config"
	"staykit/internal/transport"
	"staykit/internal/usecase/queries"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewIdentityStorage,
		NewGate,
	),
	fx.Invoke(
		wireTokenSource,
	),
)

func NewIdentityStorage(cfg config.AuthConfig) (auth.Storage, error) {
	return auth.NewFileStorage(cfg.StorageDir)
}

func NewGate(
	storage auth.Storage,
	cfg config.AuthConfig,
	profiles auth.ProfileLoader,
	store *cache.Store,
	clk clock.Clock,
	logger *slog.Logger,
) *auth.Gate {
	// Sign-out drops everything scoped to the departed user: the
	// profile entry and all booking entries. A later sign-in must never
	// see another account's data.
	onSignOut := func(userID string) {
		store.Invalidate(queries.ProfileKey(userID))
		store.InvalidatePrefix(queries.BookingsPrefix())
	}
	return auth.NewGate(storage, cfg.IdentityKey, profiles, onSignOut, clk, logger)
}

func wireTokenSource(client *transport.Client, gate *auth.Gate) {
	client.SetTokenSource(gate.Token)
}
