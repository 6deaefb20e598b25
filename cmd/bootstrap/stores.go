package bootstrap

import (
	"staykit/internal/cache"
	"staykit/internal/pkg/clock"
	"staykit/internal/session"

	"go.uber.org/fx"
)

var StoresModule = fx.Module("stores",
	fx.Provide(
		clock.NewRealClock,
		cache.NewStore,
		cache.NewCoordinator,
		session.NewStore,
	),
)
