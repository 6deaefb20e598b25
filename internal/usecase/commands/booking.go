package commands

import (
	"context"
	"log/slog"

	"staykit/internal/cache"
	"staykit/internal/domain/booking"
	"staykit/internal/pkg/errs"
	"staykit/internal/session"
	"staykit/internal/transport"
	"staykit/internal/usecase/queries"
)

var (
	ErrNoRoomSelected   = errs.New("no room selected")
	ErrNoBranchSelected = errs.New("no branch selected")
)

// BookingCommands are the booking mutations. They bypass the read path:
// a successful write only invalidates the affected cache keys so the next
// read recomputes; a failed write leaves every cache untouched and is
// never retried automatically.
type BookingCommands interface {
	CreateBooking(ctx context.Context) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, code string) error
}

type bookingCommandsImpl struct {
	endpoints BookingWriteEndpoints
	sessions  *session.Store
	store     *cache.Store
	logger    *slog.Logger
}

func NewBookingCommands(
	endpoints BookingWriteEndpoints,
	sessions *session.Store,
	store *cache.Store,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		endpoints: endpoints,
		sessions:  sessions,
		store:     store,
		logger:    logger,
	}
}

// CreateBooking submits the current booking session. On success the room
// detail entry for the booked room and the "my bookings" list go stale,
// and the session is cleared for the next flow.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context) (*queries.BookingView, error) {
	sess := c.sessions.Current()
	if !sess.HasRoom() {
		return nil, errs.Mark(ErrNoRoomSelected, transport.ErrValidation)
	}
	if !sess.HasBranch() {
		return nil, errs.Mark(ErrNoBranchSelected, transport.ErrValidation)
	}
	if err := sess.Filters.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if sess.Filters.Adults < booking.MinAdults {
		return nil, errs.Mark(errs.ErrInvalidGuestCount, errs.ErrDomainValidation)
	}
	checkIn, checkOut, err := sess.Filters.StayRange()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	draft := BookingDraft{
		RoomID:   sess.SelectedRoomID,
		BranchID: sess.BranchID,
		Type:     sess.Filters.Type,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   sess.Filters.Adults,
		Children: sess.Filters.Children,
		Infants:  sess.Filters.Infants,
	}

	view, err := c.endpoints.CreateBooking(ctx, draft)
	if err != nil {
		return nil, err
	}

	c.store.Invalidate(queries.RoomDetailKey(draft.RoomID))
	c.store.Invalidate(queries.MyBookingsKey())
	c.sessions.Clear()
	c.logger.Info("booking created", "code", view.Code, "room_id", draft.RoomID)
	return view, nil
}

// CancelBooking marks the booking's cache entries stale only after the
// server confirms the cancellation.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, code string) error {
	if code == "" {
		return errs.Mark(errs.New("booking code required"), transport.ErrValidation)
	}
	if err := c.endpoints.CancelBooking(ctx, code); err != nil {
		return err
	}

	c.store.Invalidate(queries.MyBookingsKey())
	c.store.Invalidate(queries.BookingDetailKey(code))
	c.logger.Info("booking cancelled", "code", code)
	return nil
}
