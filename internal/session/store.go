package session

import (
	"sync"

	"staykit/internal/domain/booking"
	"staykit/internal/pkg/clock"

	"github.com/google/uuid"
)

// Listener receives a snapshot of the session after each committed change.
type Listener func(booking.Session)

// Store holds the in-progress booking session. It is a pure in-memory
// reducer over the Session shape: every mutation goes through a named
// operation so the filter invariants are enforced in one place, and an
// invalid change leaves the store untouched.
type Store struct {
	mu        sync.RWMutex
	current   booking.Session
	clock     clock.Clock
	listeners map[int]Listener
	nextSubID int
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		current:   booking.NewSession(clk.Now()),
		clock:     clk,
		listeners: make(map[int]Listener),
	}
}

func (s *Store) Current() booking.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Filters() booking.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Filters
}

// SetFilters replaces the filters wholesale. The caller validates its
// input; the store still refuses a set that breaks the invariants.
func (s *Store) SetFilters(f booking.Filters) error {
	if err := f.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.current.Filters = f
	snapshot := s.current
	s.mu.Unlock()
	s.notify(snapshot)
	return nil
}

// UpdateFilters shallow-merges p into the current filters. A patch that
// would violate start<end (or any other invariant) is rejected whole.
func (s *Store) UpdateFilters(p booking.FiltersPatch) error {
	s.mu.Lock()
	next, err := s.current.Filters.Apply(p)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.current.Filters = next
	snapshot := s.current
	s.mu.Unlock()
	s.notify(snapshot)
	return nil
}

func (s *Store) SetSelectedRoom(roomID uuid.UUID) {
	s.mu.Lock()
	s.current.SelectedRoomID = roomID
	snapshot := s.current
	s.mu.Unlock()
	s.notify(snapshot)
}

func (s *Store) SetBranch(branchID uuid.UUID) {
	s.mu.Lock()
	s.current.BranchID = branchID
	snapshot := s.current
	s.mu.Unlock()
	s.notify(snapshot)
}

// ResetFilters restores the default filters, keeping branch and room.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	s.current.Filters = booking.DefaultFilters(s.clock.Now())
	snapshot := s.current
	s.mu.Unlock()
	s.notify(snapshot)
}

// Clear restores the whole session to its initial shape; called on
// checkout completion or explicit cancellation of the flow.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = booking.NewSession(s.clock.Now())
	snapshot := s.current
	s.mu.Unlock()
	s.notify(snapshot)
}

func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(snapshot booking.Session) {
	s.mu.RLock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}
