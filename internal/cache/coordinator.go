package cache

import (
	"context"
	"log/slog"
	"time"

	"staykit/internal/pkg/clock"

	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

type Options struct {
	// StaleAfter bounds how long a successful fetch stays fresh.
	// Zero or negative means the entry never expires by age.
	StaleAfter time.Duration
	// Retry is the number of additional attempts after the first failure.
	Retry int
	// Disabled defers the fetch entirely; used when a dependent value
	// (e.g. an id) is not available yet.
	Disabled bool
}

// Result is the caller-facing view of one query.
type Result[T any] struct {
	Data    T
	HasData bool
	Status  Status
	Stale   bool
	Err     error
}

// Coordinator issues fetches through the Store, collapsing concurrent
// requests for the same key into one in-flight operation. It is the only
// writer of success/error states in the Store.
type Coordinator struct {
	store  *Store
	clock  clock.Clock
	logger *slog.Logger
	group  singleflight.Group
}

func NewCoordinator(store *Store, clk clock.Clock, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

func (c *Coordinator) Store() *Store {
	return c.store
}

// Query serves key from the cache when fresh, otherwise joins or starts the
// single in-flight fetch for that key and waits for it.
//
// Caller cancellation never aborts the fetch: the result may still be
// wanted by another screen, so the fetch is detached and populates the
// store on completion while the cancelled caller just stops listening.
func Query[T any](ctx context.Context, c *Coordinator, key Key, fetch FetchFunc[T], opts Options) Result[T] {
	if opts.Disabled {
		return Result[T]{Status: StatusIdle}
	}

	if entry, ok := c.store.Get(key); ok && entry.Fresh(c.clock.Now()) {
		return resultOf[T](entry)
	}

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key.String(), func() (any, error) {
		return c.runFetch(detached, key, func(fctx context.Context) (any, error) {
			return fetch(fctx)
		}, opts), nil
	})

	select {
	case res := <-ch:
		entry, ok := res.Val.(Entry)
		if !ok {
			return Result[T]{Status: StatusError, Err: res.Err}
		}
		return resultOf[T](entry)
	case <-ctx.Done():
		var r Result[T]
		if entry, ok := c.store.Get(key); ok {
			r = resultOf[T](entry)
		}
		r.Err = ctx.Err()
		return r
	}
}

// Peek returns the current cached view for key without fetching.
func Peek[T any](c *Coordinator, key Key) Result[T] {
	entry, ok := c.store.Get(key)
	if !ok {
		return Result[T]{Status: StatusIdle}
	}
	return resultOf[T](entry)
}

// runFetch is the in-flight owner for key: it alone writes loading,
// success and error states, so the last completing fetch always wins
// without further locking.
func (c *Coordinator) runFetch(ctx context.Context, key Key, fetch func(context.Context) (any, error), opts Options) Entry {
	entry, _ := c.store.Get(key)
	entry.Status = StatusLoading
	entry.StaleAfter = opts.StaleAfter
	c.store.Put(key, entry)

	attempts := opts.Retry + 1
	for i := 0; i < attempts; i++ {
		data, err := fetch(ctx)
		if err == nil {
			entry.Data = data
			entry.HasData = true
			entry.FetchedAt = c.clock.Now()
			entry.Status = StatusSuccess
			entry.Stale = false
			entry.RetryCount = 0
			entry.LastError = nil
			c.store.Put(key, entry)
			return entry
		}

		entry.RetryCount++
		entry.LastError = err
		c.logger.Warn("fetch attempt failed",
			"key", key.String(),
			"attempt", i+1,
			"attempts", attempts,
			"error", err,
		)
		if i < attempts-1 {
			// Keep the prior data visible while retrying.
			c.store.Put(key, entry)
		}
	}

	entry.Status = StatusError
	c.store.Put(key, entry)
	return entry
}

func resultOf[T any](entry Entry) Result[T] {
	r := Result[T]{
		Status: entry.Status,
		Stale:  entry.Stale,
	}
	if entry.HasData {
		if data, ok := entry.Data.(T); ok {
			r.Data = data
			r.HasData = true
		}
	}
	if entry.Status == StatusError {
		r.Err = entry.LastError
	}
	return r
}
