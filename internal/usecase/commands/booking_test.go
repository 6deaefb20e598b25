//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"staykit/internal/cache"
	"staykit/internal/pkg/clock"
	"staykit/internal/session"
	"staykit/internal/transport"
	"staykit/internal/usecase/commands"
	"staykit/internal/usecase/queries"
	"staykit/tests/common/builder"
	commandsmock "staykit/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	endpoints *commandsmock.MockBookingWriteEndpoints
	sessions  *session.Store
	store     *cache.Store
	commands  commands.BookingCommands
	clock     *clock.MockClock
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	endpoints := commandsmock.NewMockBookingWriteEndpoints(ctrl)
	sessions := session.NewStore(clk)
	store := cache.NewStore()
	logger := slog.New(slog.DiscardHandler)
	return &bookingFixture{
		endpoints: endpoints,
		sessions:  sessions,
		store:     store,
		commands:  commands.NewBookingCommands(endpoints, sessions, store, logger),
		clock:     clk,
	}
}

func (f *bookingFixture) seedSession(t *testing.T, b *builder.SessionBuilder) {
	t.Helper()
	require.NoError(t, f.sessions.SetFilters(b.BuildFilters()))
	f.sessions.SetSelectedRoom(b.RoomID)
	f.sessions.SetBranch(b.BranchID)
}

func (f *bookingFixture) seedEntry(key cache.Key) {
	f.store.Put(key, cache.Entry{
		Key:       key,
		Data:      "cached",
		HasData:   true,
		FetchedAt: f.clock.Now(),
		Status:    cache.StatusSuccess,
	})
}

func TestBookingCommands_CreateBooking(t *testing.T) {
	t.Run("セッションが完全なら予約を作成する", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewSessionBuilder()
		f.seedSession(t, b)
		f.seedEntry(queries.RoomDetailKey(b.RoomID))
		f.seedEntry(queries.MyBookingsKey())

		want := &queries.BookingView{Code: "BK-1001", RoomID: b.RoomID, Status: "ACTIVE"}
		f.endpoints.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, draft commands.BookingDraft) (*queries.BookingView, error) {
				assert.Equal(t, b.RoomID, draft.RoomID)
				assert.Equal(t, b.BranchID, draft.BranchID)
				assert.True(t, draft.CheckOut.After(draft.CheckIn))
				return want, nil
			})

		got, err := f.commands.CreateBooking(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("成功時は部屋詳細と自分の予約一覧が失効しセッションが初期化される", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewSessionBuilder()
		f.seedSession(t, b)
		f.seedEntry(queries.RoomDetailKey(b.RoomID))
		f.seedEntry(queries.MyBookingsKey())

		f.endpoints.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(&queries.BookingView{Code: "BK-1002"}, nil)

		_, err := f.commands.CreateBooking(context.Background())
		require.NoError(t, err)

		roomEntry, ok := f.store.Get(queries.RoomDetailKey(b.RoomID))
		require.True(t, ok)
		assert.True(t, roomEntry.Stale)
		assert.True(t, roomEntry.HasData, "invalidation must keep the cached data")

		listEntry, ok := f.store.Get(queries.MyBookingsKey())
		require.True(t, ok)
		assert.True(t, listEntry.Stale)

		assert.False(t, f.sessions.Current().HasRoom())
		assert.False(t, f.sessions.Current().HasBranch())
	})

	t.Run("部屋未選択ならエンドポイントを呼ばず検証エラーを返す", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewSessionBuilder().WithoutRoom()
		f.seedSession(t, b)

		_, err := f.commands.CreateBooking(context.Background())
		require.ErrorIs(t, err, commands.ErrNoRoomSelected)
		assert.True(t, transport.IsValidation(err))
	})

	t.Run("支店未選択なら検証エラーを返す", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewSessionBuilder().WithoutBranch()
		f.seedSession(t, b)

		_, err := f.commands.CreateBooking(context.Background())
		require.ErrorIs(t, err, commands.ErrNoBranchSelected)
	})

	t.Run("作成失敗時はキャッシュもセッションも変更しない", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewSessionBuilder()
		f.seedSession(t, b)
		f.seedEntry(queries.MyBookingsKey())

		f.endpoints.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, transport.ErrServer)

		_, err := f.commands.CreateBooking(context.Background())
		require.Error(t, err)
		assert.True(t, transport.IsServer(err))

		entry, ok := f.store.Get(queries.MyBookingsKey())
		require.True(t, ok)
		assert.False(t, entry.Stale)
		assert.True(t, f.sessions.Current().HasRoom())
	})
}

func TestBookingCommands_CancelBooking(t *testing.T) {
	t.Run("キャンセル成功で一覧と詳細の両方が失効する", func(t *testing.T) {
		f := newBookingFixture(t)
		f.seedEntry(queries.MyBookingsKey())
		f.seedEntry(queries.BookingDetailKey("BK-2001"))

		f.endpoints.EXPECT().CancelBooking(gomock.Any(), "BK-2001").Return(nil)

		require.NoError(t, f.commands.CancelBooking(context.Background(), "BK-2001"))

		listEntry, _ := f.store.Get(queries.MyBookingsKey())
		assert.True(t, listEntry.Stale)
		detailEntry, _ := f.store.Get(queries.BookingDetailKey("BK-2001"))
		assert.True(t, detailEntry.Stale)
	})

	t.Run("キャンセル失敗時はキャッシュを変更しない", func(t *testing.T) {
		f := newBookingFixture(t)
		f.seedEntry(queries.MyBookingsKey())

		f.endpoints.EXPECT().CancelBooking(gomock.Any(), "BK-2002").Return(transport.ErrNetwork)

		err := f.commands.CancelBooking(context.Background(), "BK-2002")
		require.Error(t, err)
		assert.True(t, transport.IsNetwork(err))

		entry, _ := f.store.Get(queries.MyBookingsKey())
		assert.False(t, entry.Stale)
	})

	t.Run("空のコードはエンドポイントを呼ばず検証エラーを返す", func(t *testing.T) {
		f := newBookingFixture(t)

		err := f.commands.CancelBooking(context.Background(), "")
		require.Error(t, err)
		assert.True(t, transport.IsValidation(err))
	})
}
