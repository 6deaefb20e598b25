//go:build unit

package cache_test

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"staykit/internal/cache"
	"staykit/internal/pkg/clock"
	"staykit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoordinator(t *testing.T, clk clock.Clock) *cache.Coordinator {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return cache.NewCoordinator(cache.NewStore(), clk, logger)
}

func TestCoordinatorQuery(t *testing.T) {
	baseTime := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	key := cache.NewKey("branches", "detail", "b1")
	opts := cache.Options{StaleAfter: time.Minute, Retry: 2}

	t.Run("初回フェッチが成功する", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)

		res := cache.Query(context.Background(), c, key, func(context.Context) (string, error) {
			return "branch-1", nil
		}, opts)

		require.Equal(t, cache.StatusSuccess, res.Status)
		require.True(t, res.HasData)
		assert.Equal(t, "branch-1", res.Data)
		assert.NoError(t, res.Err)

		entry, ok := c.Store().Get(key)
		require.True(t, ok)
		assert.Equal(t, baseTime, entry.FetchedAt)
	})

	t.Run("freshなキャッシュはネットワークを呼ばない", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)
		var calls atomic.Int32
		fetch := func(context.Context) (string, error) {
			calls.Add(1)
			return "branch-1", nil
		}

		cache.Query(context.Background(), c, key, fetch, opts)
		res := cache.Query(context.Background(), c, key, fetch, opts)

		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, "branch-1", res.Data)
	})

	t.Run("期限切れで再フェッチする", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)
		var calls atomic.Int32
		fetch := func(context.Context) (string, error) {
			calls.Add(1)
			return "branch-1", nil
		}

		cache.Query(context.Background(), c, key, fetch, opts)
		clk.Add(2 * time.Minute)
		cache.Query(context.Background(), c, key, fetch, opts)

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("Disabledはidleでフェッチしない", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)
		var calls atomic.Int32

		res := cache.Query(context.Background(), c, key, func(context.Context) (string, error) {
			calls.Add(1)
			return "", nil
		}, cache.Options{Disabled: true})

		assert.Equal(t, cache.StatusIdle, res.Status)
		assert.False(t, res.HasData)
		assert.Zero(t, calls.Load())
		assert.Zero(t, c.Store().Len())
	})

	t.Run("同時呼び出しは単一フェッチに合流する", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)

		var calls atomic.Int32
		release := make(chan struct{})
		fetch := func(context.Context) (string, error) {
			calls.Add(1)
			<-release
			return "shared", nil
		}

		const waiters = 8
		results := make([]cache.Result[string], waiters)
		var started, done sync.WaitGroup
		started.Add(waiters)
		done.Add(waiters)
		for i := 0; i < waiters; i++ {
			go func(i int) {
				started.Done()
				results[i] = cache.Query(context.Background(), c, key, fetch, opts)
				done.Done()
			}(i)
		}
		started.Wait()
		// Give every caller time to reach the in-flight join point.
		time.Sleep(50 * time.Millisecond)
		close(release)
		done.Wait()

		assert.Equal(t, int32(1), calls.Load())
		for _, res := range results {
			require.Equal(t, cache.StatusSuccess, res.Status)
			assert.Equal(t, "shared", res.Data)
		}
	})

	t.Run("リトライ回数を使い切ってからerrorになる", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)
		fetchErr := errs.New("connection refused")
		var calls atomic.Int32

		res := cache.Query(context.Background(), c, key, func(context.Context) (string, error) {
			calls.Add(1)
			return "", fetchErr
		}, cache.Options{StaleAfter: time.Minute, Retry: 2})

		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, cache.StatusError, res.Status)
		assert.ErrorIs(t, res.Err, fetchErr)

		entry, ok := c.Store().Get(key)
		require.True(t, ok)
		assert.Equal(t, 3, entry.RetryCount)
	})

	t.Run("失敗しても以前のデータは見え続ける", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)
		var fail atomic.Bool

		fetch := func(context.Context) (string, error) {
			if fail.Load() {
				return "", errs.New("server down")
			}
			return "good", nil
		}

		cache.Query(context.Background(), c, key, fetch, opts)
		c.Store().Invalidate(key)
		fail.Store(true)

		res := cache.Query(context.Background(), c, key, fetch, cache.Options{StaleAfter: time.Minute})

		assert.Equal(t, cache.StatusError, res.Status)
		require.True(t, res.HasData)
		assert.Equal(t, "good", res.Data)
		assert.Error(t, res.Err)
	})

	t.Run("stale-while-revalidate_無効化直後も旧データを返す", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)
		var calls atomic.Int32
		fetch := func(context.Context) (string, error) {
			calls.Add(1)
			return "v1", nil
		}

		cache.Query(context.Background(), c, key, fetch, opts)
		c.Store().Invalidate(key)

		entry, ok := c.Store().Get(key)
		require.True(t, ok)
		assert.True(t, entry.Stale)
		assert.True(t, entry.HasData)
		assert.Equal(t, "v1", entry.Data)

		// The next query revalidates with exactly one new fetch.
		cache.Query(context.Background(), c, key, fetch, opts)
		assert.Equal(t, int32(2), calls.Load())
		entry, _ = c.Store().Get(key)
		assert.False(t, entry.Stale)
	})

	t.Run("キャンセルされた呼び出し元に結果は届くがフェッチは完走する", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)

		release := make(chan struct{})
		fetch := func(context.Context) (string, error) {
			<-release
			return "late", nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		resCh := make(chan cache.Result[string], 1)
		go func() {
			resCh <- cache.Query(ctx, c, key, fetch, opts)
		}()

		// Wait for the flight to register the loading entry, then unmount.
		require.Eventually(t, func() bool {
			entry, ok := c.Store().Get(key)
			return ok && entry.Status == cache.StatusLoading
		}, time.Second, time.Millisecond)
		cancel()

		res := <-resCh
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.False(t, res.HasData)

		close(release)
		require.Eventually(t, func() bool {
			entry, ok := c.Store().Get(key)
			return ok && entry.Status == cache.StatusSuccess && entry.Data == "late"
		}, time.Second, time.Millisecond)
	})

	t.Run("フェッチ中の無効化は完了後にリセットされる", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		c := newCoordinator(t, clk)

		release := make(chan struct{})
		resCh := make(chan cache.Result[string], 1)
		go func() {
			resCh <- cache.Query(context.Background(), c, key, func(context.Context) (string, error) {
				<-release
				return "fresh", nil
			}, opts)
		}()

		require.Eventually(t, func() bool {
			entry, ok := c.Store().Get(key)
			return ok && entry.Status == cache.StatusLoading
		}, time.Second, time.Millisecond)

		c.Store().Invalidate(key)
		close(release)

		res := <-resCh
		assert.Equal(t, cache.StatusSuccess, res.Status)
		entry, _ := c.Store().Get(key)
		assert.False(t, entry.Stale)
	})
}

func TestCoordinatorPeek(t *testing.T) {
	baseTime := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("未フェッチのキーはidle", func(t *testing.T) {
		c := newCoordinator(t, clock.NewMockClock(baseTime))
		res := cache.Peek[string](c, cache.NewKey("branches", "list"))
		assert.Equal(t, cache.StatusIdle, res.Status)
	})

	t.Run("キャッシュ済みの値をフェッチせずに返す", func(t *testing.T) {
		c := newCoordinator(t, clock.NewMockClock(baseTime))
		key := cache.NewKey("branches", "list")
		cache.Query(context.Background(), c, key, func(context.Context) (string, error) {
			return "cached", nil
		}, cache.Options{StaleAfter: time.Minute})

		res := cache.Peek[string](c, key)
		assert.Equal(t, cache.StatusSuccess, res.Status)
		assert.Equal(t, "cached", res.Data)
	})
}
