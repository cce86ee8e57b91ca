package state

import (
	"sync"

	"specbar/internal/source"
)

// Store coordinates amplitude frames between a producer (serial feed
// goroutine or the demo tick) and the render loop. It keeps exactly
// one frame: the whole set is replaced per publish, so a consumer can
// never observe a half-updated band set.
type Store struct {
	mu    sync.Mutex
	frame source.Frame
	seq   uint64
}

// Publish replaces the stored frame and bumps the sequence.
func (s *Store) Publish(f source.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = f
	s.seq++
}

// Since returns the current frame, its sequence, and whether it is
// newer than the caller's last-seen sequence. The frame is always
// valid: a consumer that sees fresh=false still holds the last-known
// data and simply skips its redraw.
func (s *Store) Since(seen uint64) (source.Frame, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.seq, s.seq > seen
}
