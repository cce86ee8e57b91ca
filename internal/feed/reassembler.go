// Package feed pumps the live serial byte stream into amplitude
// frames: a fixed-window reassembler plus a background goroutine that
// reads the port and publishes decoded frames to the store.
package feed

import (
	"specbar/internal/source"
)

// Reassembler accumulates bytes into a fixed-length packet window.
// When the window fills, a valid magic marker yields a decoded frame;
// anything else drops the whole window and resyncs from the next
// byte. A garbage burst therefore costs at most one window of data
// and never corrupts previously published frames.
type Reassembler struct {
	buf [source.PacketLen]byte
	n   int
}

// Feed consumes one byte and reports whether it completed a frame.
func (r *Reassembler) Feed(b byte) (source.Frame, bool) {
	r.buf[r.n] = b
	r.n++
	if r.n < source.PacketLen {
		return source.Frame{}, false
	}
	r.n = 0

	f, err := source.DecodePacket(r.buf[:])
	if err != nil {
		return source.Frame{}, false
	}
	return f, true
}

// Pending returns how many bytes sit in the partial window.
func (r *Reassembler) Pending() int { return r.n }
