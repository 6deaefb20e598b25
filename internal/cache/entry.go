package cache

import "time"

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Entry is the stored state of one remote resource.
//
// Invariants (maintained by the Coordinator, the only success/error writer):
//   - StatusSuccess implies HasData and a non-zero FetchedAt
//   - StatusLoading implies a single in-flight fetch owns this key
type Entry struct {
	Key        Key
	Data       any
	HasData    bool
	FetchedAt  time.Time
	StaleAfter time.Duration
	Status     Status
	Stale      bool
	RetryCount int
	LastError  error
}

// Fresh reports whether the entry can be served without revalidation.
func (e Entry) Fresh(now time.Time) bool {
	if e.Status != StatusSuccess || e.Stale {
		return false
	}
	if e.StaleAfter <= 0 {
		return true
	}
	return now.Before(e.FetchedAt.Add(e.StaleAfter))
}
