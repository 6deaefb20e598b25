package commands

import (
	"context"
	"time"

	"staykit/internal/domain/booking"
	"staykit/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingDraft is the write-side snapshot sent to the booking endpoint;
// it is derived from the session store at checkout, never stored.
type BookingDraft struct {
	RoomID   uuid.UUID
	BranchID uuid.UUID
	Type     booking.StayType
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	Infants  int
}

// PaymentLinkRequest is the provider contract: amount is in major
// currency units, the buyer fields come from the signed-in profile.
type PaymentLinkRequest struct {
	OrderCode   int64
	Amount      int64
	Description string
	BuyerName   string
	BuyerEmail  string
	BuyerPhone  string
	ReturnURL   string
	CancelURL   string
}

// Write-side endpoint ports implemented by internal/infra/api.

type BookingWriteEndpoints interface {
	CreateBooking(ctx context.Context, draft BookingDraft) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, code string) error
}

type AuthEndpoints interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type PaymentEndpoints interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*queries.PaymentLinkView, error)
}
