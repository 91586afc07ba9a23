// Package browser holds the client-side state machines behind the file
// browser: the upload queue, the paginated listing, and breadcrumb
// navigation. Components never call each other directly; completed
// uploads reach the listing through a refresh Signal.
package browser

import "sync"

// Signal is a monotonically increasing invalidation counter with
// subscriber fan-out. The upload coordinator is its only publisher; the
// listing controller its consumer.
type Signal struct {
	mu      sync.Mutex
	version uint64
	subs    []chan struct{}
}

func NewSignal() *Signal {
	return &Signal{}
}

// Publish bumps the version and pokes every subscriber. Notifications
// coalesce: a subscriber that has not drained its channel is not blocked
// on and loses nothing, since any change means "re-fetch".
func (s *Signal) Publish() {
	s.mu.Lock()
	s.version++
	subs := make([]chan struct{}, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Version returns the current counter value.
func (s *Signal) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers a coalescing notification channel.
func (s *Signal) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}
