//go:build unit || e2e

package builder

import (
	"time"

	"staykit/internal/domain/booking"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	Now      time.Time
	Type     booking.StayType
	Nights   int
	Adults   int
	Children int
	Infants  int
	RoomID   uuid.UUID
	BranchID uuid.UUID
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		Now:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Type:     booking.StayNightly,
		Nights:   1,
		Adults:   2,
		RoomID:   uuid.New(),
		BranchID: uuid.New(),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) BuildFilters() booking.Filters {
	filters := booking.DefaultFilters(b.Now)
	filters.Type = b.Type
	filters.EndDate = filters.StartDate.AddDate(0, 0, b.Nights)
	filters.Adults = b.Adults
	filters.Children = b.Children
	filters.Infants = b.Infants
	return filters
}

func (b *SessionBuilder) BuildSession() booking.Session {
	return booking.Session{
		Filters:        b.BuildFilters(),
		SelectedRoomID: b.RoomID,
		BranchID:       b.BranchID,
	}
}

// Fluent builder methods
func (b *SessionBuilder) WithNights(nights int) *SessionBuilder {
	b.Nights = nights
	return b
}

func (b *SessionBuilder) WithGuests(adults, children, infants int) *SessionBuilder {
	b.Adults = adults
	b.Children = children
	b.Infants = infants
	return b
}

func (b *SessionBuilder) WithoutRoom() *SessionBuilder {
	b.RoomID = uuid.Nil
	return b
}

func (b *SessionBuilder) WithoutBranch() *SessionBuilder {
	b.BranchID = uuid.Nil
	return b
}
