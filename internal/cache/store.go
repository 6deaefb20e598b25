package cache

import (
	"sync"
)

// Listener is notified with the key of every committed entry transition.
type Listener func(key Key)

// Store is the process-wide keyed store of remote-fetched values.
// At most one entry exists per key. Invalidation marks entries stale but
// never deletes data, so callers can keep rendering the previous value
// while a revalidating fetch is in flight.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]Entry
	listeners map[int]Listener
	nextSubID int
}

func NewStore() *Store {
	return &Store{
		entries:   make(map[string]Entry),
		listeners: make(map[int]Listener),
	}
}

func (s *Store) Get(key Key) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key.String()]
	return e, ok
}

func (s *Store) Put(key Key, entry Entry) {
	entry.Key = key
	s.mu.Lock()
	s.entries[key.String()] = entry
	s.mu.Unlock()
	s.notify(key)
}

// Invalidate marks the entry for key stale. In-flight fetches are not
// cancelled; a fetch completing afterwards resets staleness.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	e, ok := s.entries[key.String()]
	if ok {
		e.Stale = true
		s.entries[key.String()] = e
	}
	s.mu.Unlock()
	if ok {
		s.notify(key)
	}
}

// InvalidatePrefix marks every entry whose key begins with prefix stale,
// e.g. all branch queries at once.
func (s *Store) InvalidatePrefix(prefix Key) {
	s.mu.Lock()
	touched := make([]Key, 0, len(s.entries))
	for id, e := range s.entries {
		if e.Key.HasPrefix(prefix) && !e.Stale {
			e.Stale = true
			s.entries[id] = e
			touched = append(touched, e.Key)
		}
	}
	s.mu.Unlock()
	for _, k := range touched {
		s.notify(k)
	}
}

// InvalidateAll marks every entry stale. Triggered exactly once per
// language change: all cached payloads carry localized text.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	touched := make([]Key, 0, len(s.entries))
	for id, e := range s.entries {
		if !e.Stale {
			e.Stale = true
			s.entries[id] = e
			touched = append(touched, e.Key)
		}
	}
	s.mu.Unlock()
	for _, k := range touched {
		s.notify(k)
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Subscribe registers a listener for committed transitions and returns the
// matching unsubscribe function.
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

func (s *Store) notify(key Key) {
	s.mu.RLock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(key)
	}
}
