package components

import (
	"staykit/internal/infra/api"
	"staykit/internal/usecase/commands"
	"staykit/internal/usecase/queries"

	"go.uber.org/fx"
)

var EndpointsModule = fx.Module("endpoints",
	fx.Provide(
		fx.Annotate(
			api.NewCatalogClient,
			fx.As(new(queries.CatalogEndpoints)),
		),
		fx.Annotate(
			api.NewProfileClient,
			fx.As(new(queries.ProfileEndpoints)),
		),
		fx.Annotate(
			api.NewAuthClient,
			fx.As(new(commands.AuthEndpoints)),
		),
		fx.Annotate(
			api.NewPaymentClient,
			fx.As(new(commands.PaymentEndpoints)),
		),
		fx.Annotate(
			api.NewBookingClient,
			fx.As(new(queries.BookingReadEndpoints)),
			fx.As(new(commands.BookingWriteEndpoints)),
		),
	),
)
