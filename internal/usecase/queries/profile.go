package queries

import (
	"context"

	"staykit/internal/auth"
	"staykit/internal/cache"
	"staykit/internal/pkg/config"
	"staykit/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type ProfileQueries interface {
	Profile(ctx context.Context, userID string) cache.Result[*ProfileView]
}

type profileQueriesImpl struct {
	endpoints   ProfileEndpoints
	coordinator *cache.Coordinator
	cfg         config.CacheConfig
}

func NewProfileQueries(endpoints ProfileEndpoints, coordinator *cache.Coordinator, cfg config.CacheConfig) ProfileQueries {
	return &profileQueriesImpl{
		endpoints:   endpoints,
		coordinator: coordinator,
		cfg:         cfg,
	}
}

// Profile is keyed by user id so sign-out can invalidate exactly the
// departing user's entry. The endpoint itself derives the user from the
// bearer token.
func (q *profileQueriesImpl) Profile(ctx context.Context, userID string) cache.Result[*ProfileView] {
	return cache.Query(ctx, q.coordinator, ProfileKey(userID), func(fctx context.Context) (*ProfileView, error) {
		return q.endpoints.GetProfile(fctx)
	}, cache.Options{
		StaleAfter: q.cfg.ProfileStaleAfter,
		Retry:      q.cfg.Retry,
		Disabled:   userID == "",
	})
}

// gateProfileLoader adapts the profile query to the auth gate, making the
// gate's profile fetch a regular cache entry.
type gateProfileLoader struct {
	queries ProfileQueries
}

func NewGateProfileLoader(queries ProfileQueries) auth.ProfileLoader {
	return &gateProfileLoader{queries: queries}
}

func (l *gateProfileLoader) LoadProfile(ctx context.Context, userID string) (*auth.Profile, error) {
	res := l.queries.Profile(ctx, userID)
	if res.Err != nil {
		return nil, res.Err
	}
	if !res.HasData || res.Data == nil {
		return nil, errs.ErrProfileMissing
	}

	profile := &auth.Profile{}
	if err := copier.Copy(profile, res.Data); err != nil {
		return nil, errs.Wrap(err, "failed to map profile view")
	}
	return profile, nil
}
