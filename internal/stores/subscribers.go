// Package stores holds the three session state containers: auth, travel
// and ui. Each is an explicit instance constructed at startup and handed
// to its consumers; none is a package-level singleton, so tests build
// isolated stores freely.
package stores

import "sync"

// subscribers fans out change notifications to registered listeners.
// Listeners run outside the owning store's lock and must not assume
// ordering between concurrent mutations.
type subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (s *subscribers) add(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[int]func())
	}
	id := s.next
	s.next++
	s.fns[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
