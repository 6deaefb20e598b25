package bootstrap

import (
	"staykit/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.APIConfig { return cfg.API },
		func(cfg config.Config) config.CacheConfig { return cfg.Cache },
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.LogConfig { return cfg.Log },
	),
)
