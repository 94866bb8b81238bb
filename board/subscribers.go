package board

import "sync"

// subscribers fans view snapshots out to live page connections.
// Each subscriber holds at most one pending snapshot; a newer one replaces it.
type subscribers struct {
	mu    sync.Mutex
	chans map[chan View]struct{}
}

func newSubscribers() *subscribers {
	return &subscribers{
		chans: map[chan View]struct{}{},
	}
}

func (s *subscribers) add(initial View) chan View {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan View, 1)
	ch <- initial
	s.chans[ch] = struct{}{}
	return ch
}

func (s *subscribers) remove(ch chan View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chans[ch]; ok {
		delete(s.chans, ch)
		close(ch)
	}
}

func (s *subscribers) publish(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.chans {
		select {
		case <-ch:
		default:
		}
		ch <- view.clone()
	}
}

func (s *subscribers) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.chans {
		delete(s.chans, ch)
		close(ch)
	}
}
