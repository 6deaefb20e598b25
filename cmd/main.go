package main

import (
	"context"
	"log/slog"
	"os"

	"staykit/cmd/bootstrap"
	"staykit/internal/auth"
	"staykit/internal/pkg/errs"
	"staykit/internal/session"
	"staykit/internal/usecase/queries"

	"go.uber.org/fx"
)

// Developer harness: restores the persisted identity, warms the catalog
// caches, and prints what a client screen would see on launch.
func startClient(
	lc fx.Lifecycle,
	gate *auth.Gate,
	catalog queries.CatalogQueries,
	sessions *session.Store,
	logger *slog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := gate.Restore(ctx); err != nil {
				logger.Warn("セッションの復元に失敗しました",
					"error", err,
					"stack", errs.ExtractStackLines(err, 5),
				)
			}
			logger.Info("🚀 クライアントを起動します",
				"auth_state", string(gate.State()),
				"render", string(gate.Render()),
			)

			provinces := catalog.Provinces(ctx)
			if provinces.Err != nil {
				logger.Warn("省一覧の取得に失敗しました", "error", provinces.Err)
			} else {
				logger.Info("省一覧を取得しました", "count", len(provinces.Data))
			}

			branches := catalog.Branches(ctx)
			if branches.Err != nil {
				logger.Warn("支店一覧の取得に失敗しました", "error", branches.Err)
			} else if branches.HasData {
				logger.Info("支店一覧を取得しました",
					"count", len(branches.Data.Items),
					"total", branches.Data.Meta.Total,
					"stale", branches.Stale,
				)
			}

			filters := sessions.Filters()
			logger.Info("既定の滞在条件",
				"type", string(filters.Type),
				"start", filters.StartDate.Format("2006-01-02"),
				"end", filters.EndDate.Format("2006-01-02"),
				"adults", filters.Adults,
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 クライアントを停止します")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			startClient,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("アプリケーションが正常に停止しました")
}
