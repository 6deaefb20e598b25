//go:build e2e

package flow

import (
	"context"
	"testing"
	"time"

	"staykit/cmd/bootstrap"
	"staykit/internal/auth"
	"staykit/internal/cache"
	"staykit/internal/pkg/config"
	"staykit/internal/session"
	"staykit/internal/usecase/commands"
	"staykit/internal/usecase/queries"
	"staykit/tests/common/apitest"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// clientApp is the fully wired client, built the same way the production
// binary is, but pointed at the stub backend.
type clientApp struct {
	Gate     *auth.Gate
	Store    *cache.Store
	Sessions *session.Store
	Catalog  queries.CatalogQueries
	Bookings queries.BookingQueries
	Auth     commands.AuthCommands
	Booking  commands.BookingCommands
	Payment  commands.PaymentCommands
}

func buildClientApp(t *testing.T, server *apitest.Server, storageDir string) *clientApp {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.API.BaseURL = server.URL
	cfg.Auth.StorageDir = storageDir

	client := &clientApp{}
	app := fx.New(
		bootstrap.Module,
		fx.Replace(cfg),
		fx.Populate(
			&client.Gate,
			&client.Store,
			&client.Sessions,
			&client.Catalog,
			&client.Bookings,
			&client.Auth,
			&client.Booking,
			&client.Payment,
		),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "クライアントの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})
	return client
}
