package bootstrap

import (
	"staykit/internal/cache"
	"staykit/internal/transport"

	"go.uber.org/fx"
)

var TransportModule = fx.Module("transport",
	fx.Provide(
		transport.NewClient,
	),
	fx.Invoke(
		wireLanguageInvalidation,
	),
)

// A language switch changes the localized payload of every read
// endpoint, so the whole cache goes stale at once.
func wireLanguageInvalidation(client *transport.Client, store *cache.Store) {
	client.OnLanguageChange(func(string) {
		store.InvalidateAll()
	})
}
