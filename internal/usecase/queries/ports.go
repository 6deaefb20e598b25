package queries

import (
	"context"

	"github.com/google/uuid"
)

// Read-side endpoint ports implemented by internal/infra/api. The shape
// differences between entities (bare array vs envelope) are already
// normalized behind these interfaces.

type CatalogEndpoints interface {
	ListBranches(ctx context.Context) ([]BranchView, ListMeta, error)
	GetBranch(ctx context.Context, id uuid.UUID) (*BranchDetailView, error)
	ListRooms(ctx context.Context, branchID uuid.UUID) ([]RoomView, ListMeta, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomDetailView, error)
	ListProvinces(ctx context.Context) ([]ProvinceView, error)
}

type BookingReadEndpoints interface {
	ListMyBookings(ctx context.Context) ([]BookingView, ListMeta, error)
	GetBooking(ctx context.Context, code string) (*BookingView, error)
}

type ProfileEndpoints interface {
	GetProfile(ctx context.Context) (*ProfileView, error)
}
