package queries

import (
	"staykit/internal/cache"

	"github.com/google/uuid"
)

// Cache key constructors. Every fetchable resource has exactly one
// constructor here so mutations and queries can never disagree on a key.

func BranchesPrefix() cache.Key {
	return cache.NewKey("branches")
}

func BranchListKey() cache.Key {
	return cache.NewKey("branches", "list")
}

func BranchDetailKey(id uuid.UUID) cache.Key {
	return cache.NewKey("branches", "detail", id.String())
}

func RoomsPrefix() cache.Key {
	return cache.NewKey("rooms")
}

func RoomListKey(branchID uuid.UUID) cache.Key {
	return cache.NewKey("rooms", "list", branchID.String())
}

func RoomDetailKey(id uuid.UUID) cache.Key {
	return cache.NewKey("rooms", "detail", id.String())
}

func ProvinceListKey() cache.Key {
	return cache.NewKey("provinces", "list")
}

func BookingsPrefix() cache.Key {
	return cache.NewKey("bookings")
}

func MyBookingsKey() cache.Key {
	return cache.NewKey("bookings", "mine")
}

func BookingDetailKey(code string) cache.Key {
	return cache.NewKey("bookings", "detail", code)
}

func ProfileKey(userID string) cache.Key {
	return cache.NewKey("profile", userID)
}
