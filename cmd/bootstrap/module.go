package bootstrap

import (
	"staykit/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoresModule,
	TransportModule,
	AuthModule,
	components.EndpointsModule,
	components.UseCaseModule,
)
