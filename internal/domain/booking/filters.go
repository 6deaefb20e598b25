package booking

import (
	"errors"
	"time"

	"staykit/internal/pkg/patch"
)

var (
	ErrInvalidStayType  = errors.New("invalid stay type")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrEndNotAfterStart = errors.New("stay end must be after stay start")
	ErrNegativeGuests   = errors.New("guest counts cannot be negative")
)

type StayType string

const (
	StayHourly  StayType = "HOURLY"
	StayNightly StayType = "NIGHTLY"
	StayDaily   StayType = "DAILY"
)

func NewStayType(value string) (StayType, error) {
	switch StayType(value) {
	case StayHourly, StayNightly, StayDaily:
		return StayType(value), nil
	default:
		return "", ErrInvalidStayType
	}
}

// MinAdults is the guest floor restored by a filter reset.
const MinAdults = 1

const timeOfDayLayout = "15:04"

// Filters is the search/booking parameter set threaded across screens.
// Dates are date-only (midnight, UTC); times are "HH:MM" check-in/out
// times and may be empty until the user picks them.
type Filters struct {
	Type      StayType
	StartDate time.Time
	EndDate   time.Time
	StartTime string
	EndTime   string
	Adults    int
	Children  int
	Infants   int
}

// FiltersPatch is a partial update; nil fields keep the current value.
type FiltersPatch struct {
	Type      *StayType
	StartDate *time.Time
	EndDate   *time.Time
	StartTime *string
	EndTime   *string
	Adults    *int
	Children  *int
	Infants   *int
}

// DefaultFilters is the reset target: tonight with the minimum guests.
func DefaultFilters(now time.Time) Filters {
	today := midnight(now)
	return Filters{
		Type:      StayNightly,
		StartDate: today,
		EndDate:   today.AddDate(0, 0, 1),
		StartTime: "14:00",
		EndTime:   "12:00",
		Adults:    MinAdults,
	}
}

func (f Filters) Validate() error {
	if _, err := NewStayType(string(f.Type)); err != nil {
		return err
	}
	if f.Adults < 0 || f.Children < 0 || f.Infants < 0 {
		return ErrNegativeGuests
	}

	start, startSet, err := combine(f.StartDate, f.StartTime)
	if err != nil {
		return err
	}
	end, endSet, err := combine(f.EndDate, f.EndTime)
	if err != nil {
		return err
	}
	// Ordering is only enforceable once both ends are set.
	if startSet && endSet && !end.After(start) {
		return ErrEndNotAfterStart
	}
	return nil
}

// Apply merges p into f and validates the merged result. A patch that
// would violate the invariants is rejected whole: the returned error is
// non-nil and f is unchanged.
func (f Filters) Apply(p FiltersPatch) (Filters, error) {
	next := Filters{
		Type:      patch.Coalesce(p.Type, f.Type),
		StartDate: patch.Coalesce(p.StartDate, f.StartDate),
		EndDate:   patch.Coalesce(p.EndDate, f.EndDate),
		StartTime: patch.Coalesce(p.StartTime, f.StartTime),
		EndTime:   patch.Coalesce(p.EndTime, f.EndTime),
		Adults:    patch.Coalesce(p.Adults, f.Adults),
		Children:  patch.Coalesce(p.Children, f.Children),
		Infants:   patch.Coalesce(p.Infants, f.Infants),
	}
	if err := next.Validate(); err != nil {
		return Filters{}, err
	}
	return next, nil
}

// StayRange resolves the filters to concrete check-in/check-out instants.
// Both ends must be set; checkout screens call this after validation.
func (f Filters) StayRange() (time.Time, time.Time, error) {
	start, startSet, err := combine(f.StartDate, f.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, endSet, err := combine(f.EndDate, f.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !startSet || !endSet {
		return time.Time{}, time.Time{}, ErrEndNotAfterStart
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrEndNotAfterStart
	}
	return start, end, nil
}

func (f Filters) TotalGuests() int {
	return f.Adults + f.Children + f.Infants
}

// combine resolves a date and an optional time-of-day to one instant.
// A zero date means the side is not set yet.
func combine(date time.Time, timeOfDay string) (time.Time, bool, error) {
	if date.IsZero() {
		return time.Time{}, false, nil
	}
	if timeOfDay == "" {
		return date, true, nil
	}
	t, err := time.Parse(timeOfDayLayout, timeOfDay)
	if err != nil {
		return time.Time{}, false, ErrInvalidTimeOfDay
	}
	return date.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), true, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
