package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"staykit/internal/pkg/errs"
	"staykit/internal/transport"
	"staykit/internal/usecase/commands"
	"staykit/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingClient covers both sides of the booking contract: the cached
// reads and the write operations that invalidate them.
type BookingClient struct {
	client *transport.Client
}

func NewBookingClient(client *transport.Client) *BookingClient {
	return &BookingClient{client: client}
}

func (c *BookingClient) ListMyBookings(ctx context.Context) ([]queries.BookingView, queries.ListMeta, error) {
	var payload listPayload[queries.BookingView]
	if err := c.client.Get(ctx, "/api/bookings/my", nil, &payload); err != nil {
		return nil, queries.ListMeta{}, err
	}
	return payload.Items, payload.Meta, nil
}

func (c *BookingClient) GetBooking(ctx context.Context, code string) (*queries.BookingView, error) {
	var envelope dataEnvelope[queries.BookingView]
	if err := c.client.Get(ctx, fmt.Sprintf("/api/bookings/%s", code), nil, &envelope); err != nil {
		return nil, markNotFound(err, errs.ErrBookingNotFound)
	}
	return &envelope.Data, nil
}

type createBookingRequest struct {
	RoomID   uuid.UUID `json:"roomId"`
	BranchID uuid.UUID `json:"branchId"`
	Type     string    `json:"type"`
	CheckIn  string    `json:"checkIn"`
	CheckOut string    `json:"checkOut"`
	Adults   int       `json:"adults"`
	Children int       `json:"children"`
	Infants  int       `json:"infants"`
}

func (c *BookingClient) CreateBooking(ctx context.Context, draft commands.BookingDraft) (*queries.BookingView, error) {
	req := createBookingRequest{
		RoomID:   draft.RoomID,
		BranchID: draft.BranchID,
		Type:     string(draft.Type),
		CheckIn:  draft.CheckIn.Format(time.RFC3339),
		CheckOut: draft.CheckOut.Format(time.RFC3339),
		Adults:   draft.Adults,
		Children: draft.Children,
		Infants:  draft.Infants,
	}

	var envelope dataEnvelope[queries.BookingView]
	if err := c.client.Post(ctx, "/api/bookings", req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (c *BookingClient) CancelBooking(ctx context.Context, code string) error {
	err := c.client.Post(ctx, fmt.Sprintf("/api/bookings/%s/cancel", code), nil, nil)
	if err != nil {
		var apiErr *transport.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return errs.Mark(err, errs.ErrBookingNotActive)
		}
		return markNotFound(err, errs.ErrBookingNotFound)
	}
	return nil
}
