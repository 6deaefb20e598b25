package api

import (
	"context"
	"fmt"
	"net/url"

	"staykit/internal/pkg/errs"
	"staykit/internal/transport"
	"staykit/internal/usecase/queries"

	"github.com/google/uuid"
)

// CatalogClient serves the browse surface: branches, rooms, provinces.
type CatalogClient struct {
	client *transport.Client
}

func NewCatalogClient(client *transport.Client) *CatalogClient {
	return &CatalogClient{client: client}
}

func (c *CatalogClient) ListBranches(ctx context.Context) ([]queries.BranchView, queries.ListMeta, error) {
	var payload listPayload[queries.BranchView]
	if err := c.client.Get(ctx, "/api/branches", nil, &payload); err != nil {
		return nil, queries.ListMeta{}, err
	}
	return payload.Items, payload.Meta, nil
}

func (c *CatalogClient) GetBranch(ctx context.Context, id uuid.UUID) (*queries.BranchDetailView, error) {
	var envelope dataEnvelope[queries.BranchDetailView]
	if err := c.client.Get(ctx, fmt.Sprintf("/api/branches/%s", id), nil, &envelope); err != nil {
		return nil, markNotFound(err, errs.ErrBranchNotFound)
	}
	return &envelope.Data, nil
}

func (c *CatalogClient) ListRooms(ctx context.Context, branchID uuid.UUID) ([]queries.RoomView, queries.ListMeta, error) {
	params := url.Values{"branchId": {branchID.String()}}
	var payload listPayload[queries.RoomView]
	if err := c.client.Get(ctx, "/api/rooms", params, &payload); err != nil {
		return nil, queries.ListMeta{}, err
	}
	return payload.Items, payload.Meta, nil
}

func (c *CatalogClient) GetRoom(ctx context.Context, id uuid.UUID) (*queries.RoomDetailView, error) {
	var envelope dataEnvelope[queries.RoomDetailView]
	if err := c.client.Get(ctx, fmt.Sprintf("/api/rooms/%s", id), nil, &envelope); err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}
	return &envelope.Data, nil
}

// Provinces come back as a bare array, no meta to surface.
func (c *CatalogClient) ListProvinces(ctx context.Context) ([]queries.ProvinceView, error) {
	var payload listPayload[queries.ProvinceView]
	if err := c.client.Get(ctx, "/api/provinces", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}
