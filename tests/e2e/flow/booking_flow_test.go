//go:build e2e

package flow

import (
	"context"
	"testing"

	"staykit/internal/auth"
	"staykit/internal/domain/booking"
	"staykit/internal/pkg/ptr"
	"staykit/internal/usecase/queries"
	"staykit/tests/common/apitest"
	"staykit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(server *apitest.Server) (queries.BranchView, queries.RoomView) {
	province := queries.ProvinceView{ID: uuid.New(), Name: "Hồ Chí Minh", Code: "HCM"}
	branch := queries.BranchView{
		ID:         uuid.New(),
		Name:       "Chi nhánh Quận 1",
		ProvinceID: province.ID,
		RatingAvg:  4.6,
	}
	room := queries.RoomView{
		ID:           uuid.New(),
		BranchID:     branch.ID,
		Name:         "Deluxe King",
		Capacity:     2,
		PriceNightly: 120000,
	}
	server.AddProvince(province)
	server.AddBranch(branch, room)
	return branch, room
}

func TestBookingFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("閲覧からログイン、予約、支払いリンクまでの一連の流れ", func(t *testing.T) {
		server := apitest.NewServer(t)
		branch, room := seedCatalog(server)
		profile := builder.NewProfileBuilder()
		server.AddUser(profile.Email, "password123", *profile.BuildView())

		app := buildClientApp(t, server, t.TempDir())

		// 初回起動は未認証で公開画面を表示する
		require.NoError(t, app.Gate.Restore(ctx))
		assert.Equal(t, auth.StateUnauthenticated, app.Gate.State())
		assert.Equal(t, auth.RenderPublic, app.Gate.Render())

		// 閲覧はログイン不要
		provinces := app.Catalog.Provinces(ctx)
		require.NoError(t, provinces.Err)
		require.Len(t, provinces.Data, 1)

		branches := app.Catalog.Branches(ctx)
		require.NoError(t, branches.Err)
		require.Len(t, branches.Data.Items, 1)
		assert.Equal(t, branch.Name, branches.Data.Items[0].Name)

		// 2回目はキャッシュから返りネットワークを呼ばない
		again := app.Catalog.Branches(ctx)
		require.NoError(t, again.Err)
		assert.Equal(t, 1, server.Hits("branches"))

		rooms := app.Catalog.Rooms(ctx, branch.ID)
		require.NoError(t, rooms.Err)
		require.Len(t, rooms.Data.Items, 1)

		// ログインでReadyに遷移しプロフィールが載る
		require.NoError(t, app.Auth.Login(ctx, profile.Email, "password123"))
		require.Equal(t, auth.StateReady, app.Gate.State())
		identity, ok := app.Gate.Identity()
		require.True(t, ok)
		require.NotNil(t, identity.Profile)
		assert.Equal(t, profile.FullName, identity.Profile.FullName)

		// 滞在条件を組み立てて予約する
		require.NoError(t, app.Sessions.UpdateFilters(booking.FiltersPatch{
			Adults: ptr.To(2),
		}))
		app.Sessions.SetBranch(branch.ID)
		app.Sessions.SetSelectedRoom(room.ID)

		before := app.Bookings.MyBookings(ctx)
		require.NoError(t, before.Err)
		assert.Empty(t, before.Data.Items)
		require.Equal(t, 1, server.Hits("my_bookings"))

		created, err := app.Booking.CreateBooking(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, created.Code)
		assert.False(t, app.Sessions.Current().HasRoom(), "予約成功でセッションが初期化される")

		// 無効化された一覧はちょうど1回だけ再取得される
		after := app.Bookings.MyBookings(ctx)
		require.NoError(t, after.Err)
		require.Len(t, after.Data.Items, 1)
		assert.Equal(t, created.Code, after.Data.Items[0].Code)
		assert.Equal(t, 2, server.Hits("my_bookings"))

		// 支払いリンクはプロバイダの応答をそのまま返す
		link, err := app.Payment.CreatePaymentLink(ctx, created.Code, 240000)
		require.NoError(t, err)
		assert.NotEmpty(t, link.CheckoutURL)
		assert.Equal(t, "PENDING", link.Status)
		assert.Equal(t, int64(2400), link.Amount)

		// キャンセル後の詳細は新しい状態を映す
		require.NoError(t, app.Booking.CancelBooking(ctx, created.Code))
		detail := app.Bookings.Booking(ctx, created.Code)
		require.NoError(t, detail.Err)
		assert.Equal(t, "CANCELLED", detail.Data.Status)

		// ログアウトで未認証に戻る
		app.Auth.Logout()
		assert.Equal(t, auth.StateUnauthenticated, app.Gate.State())
	})

	t.Run("再起動で永続化された認証が復元される", func(t *testing.T) {
		server := apitest.NewServer(t)
		seedCatalog(server)
		profile := builder.NewProfileBuilder()
		server.AddUser(profile.Email, "password123", *profile.BuildView())
		storageDir := t.TempDir()

		first := buildClientApp(t, server, storageDir)
		require.NoError(t, first.Gate.Restore(ctx))
		require.NoError(t, first.Auth.Login(ctx, profile.Email, "password123"))
		require.Equal(t, auth.StateReady, first.Gate.State())

		// 同じ保存先を使う2つ目のアプリはトークンだけでReadyまで到達する
		second := buildClientApp(t, server, storageDir)
		require.NoError(t, second.Gate.Restore(ctx))
		assert.Equal(t, auth.StateReady, second.Gate.State())
		identity, ok := second.Gate.Identity()
		require.True(t, ok)
		assert.Equal(t, profile.FullName, identity.Profile.FullName)
	})

	t.Run("無効な資格情報ではログインできず状態も変わらない", func(t *testing.T) {
		server := apitest.NewServer(t)
		profile := builder.NewProfileBuilder()
		server.AddUser(profile.Email, "password123", *profile.BuildView())

		app := buildClientApp(t, server, t.TempDir())
		require.NoError(t, app.Gate.Restore(ctx))

		err := app.Auth.Login(ctx, profile.Email, "wrong-password")
		require.Error(t, err)
		assert.Equal(t, auth.StateUnauthenticated, app.Gate.State())
		assert.Equal(t, auth.RenderPublic, app.Gate.Render())
	})
}
