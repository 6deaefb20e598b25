package queries

import (
	"context"

	"staykit/internal/cache"
	"staykit/internal/pkg/config"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	Branches(ctx context.Context) cache.Result[BranchList]
	Branch(ctx context.Context, id uuid.UUID) cache.Result[*BranchDetailView]
	Rooms(ctx context.Context, branchID uuid.UUID) cache.Result[RoomList]
	Room(ctx context.Context, id uuid.UUID) cache.Result[*RoomDetailView]
	Provinces(ctx context.Context) cache.Result[[]ProvinceView]
}

type catalogQueriesImpl struct {
	endpoints   CatalogEndpoints
	coordinator *cache.Coordinator
	cfg         config.CacheConfig
}

func NewCatalogQueries(endpoints CatalogEndpoints, coordinator *cache.Coordinator, cfg config.CacheConfig) CatalogQueries {
	return &catalogQueriesImpl{
		endpoints:   endpoints,
		coordinator: coordinator,
		cfg:         cfg,
	}
}

func (q *catalogQueriesImpl) Branches(ctx context.Context) cache.Result[BranchList] {
	return cache.Query(ctx, q.coordinator, BranchListKey(), func(fctx context.Context) (BranchList, error) {
		items, meta, err := q.endpoints.ListBranches(fctx)
		if err != nil {
			return BranchList{}, err
		}
		return BranchList{Items: items, Meta: meta}, nil
	}, cache.Options{StaleAfter: q.cfg.BranchStaleAfter, Retry: q.cfg.Retry})
}

func (q *catalogQueriesImpl) Branch(ctx context.Context, id uuid.UUID) cache.Result[*BranchDetailView] {
	return cache.Query(ctx, q.coordinator, BranchDetailKey(id), func(fctx context.Context) (*BranchDetailView, error) {
		return q.endpoints.GetBranch(fctx, id)
	}, cache.Options{
		StaleAfter: q.cfg.BranchStaleAfter,
		Retry:      q.cfg.Retry,
		Disabled:   id == uuid.Nil,
	})
}

// Rooms is disabled until a branch is chosen; screens mount before the
// dependent id is available.
func (q *catalogQueriesImpl) Rooms(ctx context.Context, branchID uuid.UUID) cache.Result[RoomList] {
	return cache.Query(ctx, q.coordinator, RoomListKey(branchID), func(fctx context.Context) (RoomList, error) {
		items, meta, err := q.endpoints.ListRooms(fctx, branchID)
		if err != nil {
			return RoomList{}, err
		}
		return RoomList{Items: items, Meta: meta}, nil
	}, cache.Options{
		StaleAfter: q.cfg.RoomStaleAfter,
		Retry:      q.cfg.Retry,
		Disabled:   branchID == uuid.Nil,
	})
}

func (q *catalogQueriesImpl) Room(ctx context.Context, id uuid.UUID) cache.Result[*RoomDetailView] {
	return cache.Query(ctx, q.coordinator, RoomDetailKey(id), func(fctx context.Context) (*RoomDetailView, error) {
		return q.endpoints.GetRoom(fctx, id)
	}, cache.Options{
		StaleAfter: q.cfg.RoomStaleAfter,
		Retry:      q.cfg.Retry,
		Disabled:   id == uuid.Nil,
	})
}

func (q *catalogQueriesImpl) Provinces(ctx context.Context) cache.Result[[]ProvinceView] {
	return cache.Query(ctx, q.coordinator, ProvinceListKey(), func(fctx context.Context) ([]ProvinceView, error) {
		return q.endpoints.ListProvinces(fctx)
	}, cache.Options{StaleAfter: q.cfg.ProvinceStaleAfter, Retry: q.cfg.Retry})
}
