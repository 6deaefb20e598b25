package queries

import (
	"context"

	"staykit/internal/cache"
	"staykit/internal/pkg/config"
)

type BookingQueries interface {
	MyBookings(ctx context.Context) cache.Result[BookingList]
	Booking(ctx context.Context, code string) cache.Result[*BookingView]
}

type bookingQueriesImpl struct {
	endpoints   BookingReadEndpoints
	coordinator *cache.Coordinator
	cfg         config.CacheConfig
}

func NewBookingQueries(endpoints BookingReadEndpoints, coordinator *cache.Coordinator, cfg config.CacheConfig) BookingQueries {
	return &bookingQueriesImpl{
		endpoints:   endpoints,
		coordinator: coordinator,
		cfg:         cfg,
	}
}

func (q *bookingQueriesImpl) MyBookings(ctx context.Context) cache.Result[BookingList] {
	return cache.Query(ctx, q.coordinator, MyBookingsKey(), func(fctx context.Context) (BookingList, error) {
		items, meta, err := q.endpoints.ListMyBookings(fctx)
		if err != nil {
			return BookingList{}, err
		}
		return BookingList{Items: items, Meta: meta}, nil
	}, cache.Options{StaleAfter: q.cfg.BookingStaleAfter, Retry: q.cfg.Retry})
}

func (q *bookingQueriesImpl) Booking(ctx context.Context, code string) cache.Result[*BookingView] {
	return cache.Query(ctx, q.coordinator, BookingDetailKey(code), func(fctx context.Context) (*BookingView, error) {
		return q.endpoints.GetBooking(fctx, code)
	}, cache.Options{
		StaleAfter: q.cfg.BookingStaleAfter,
		Retry:      q.cfg.Retry,
		Disabled:   code == "",
	})
}
