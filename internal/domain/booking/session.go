package booking

import (
	"time"

	"github.com/google/uuid"
)

// Session is the transient state of one in-progress booking flow. It lives
// in memory only and is cleared on checkout completion or cancellation.
type Session struct {
	Filters        Filters
	SelectedRoomID uuid.UUID // uuid.Nil while no room is picked
	BranchID       uuid.UUID // uuid.Nil while no branch is picked
}

func NewSession(now time.Time) Session {
	return Session{Filters: DefaultFilters(now)}
}

func (s Session) HasRoom() bool {
	return s.SelectedRoomID != uuid.Nil
}

func (s Session) HasBranch() bool {
	return s.BranchID != uuid.Nil
}
