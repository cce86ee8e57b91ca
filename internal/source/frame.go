// Package source produces amplitude frames for the renderer: one VU
// level plus sixteen band heights per fetch, from either the canned
// demo table or a decoded serial packet. Both providers share the
// same normalization so switching sources never changes the visual
// semantics.
package source

import (
	"errors"
	"fmt"
)

const (
	// NumBands is the number of analyzer bars.
	NumBands = 16

	// MaxPeak is the tallest displayable bar. Raw values are 4-bit
	// and every provider adds one, so the range is 1..16 for live
	// data and 0 only for the cleared frame.
	MaxPeak = 16

	// MaxVU is the VU gauge length per side.
	MaxVU = 15

	// Magic is the packet start marker.
	Magic = 0xA5

	// PacketLen is the fixed wire frame length: marker, VU byte, and
	// eight nibble-packed peak bytes.
	PacketLen = 10
)

// Frame is one complete amplitude update. The whole value is replaced
// per fetch; renderers never see a partially written set.
type Frame struct {
	VU    byte
	Peaks [NumBands]byte
}

// ErrBadMagic reports a packet whose start marker is wrong. The
// caller discards the window and resyncs; the previous frame stays
// untouched.
var ErrBadMagic = errors.New("source: bad packet magic")

// DecodePacket decodes a reassembled wire frame. The VU byte is used
// directly (clamped to the gauge); each peak byte unpacks two bands,
// low nibble to the even index, high nibble to the odd index, and
// both get the +1 floor so a silent band still paints a one-row bar.
func DecodePacket(buf []byte) (Frame, error) {
	if len(buf) != PacketLen {
		return Frame{}, fmt.Errorf("source: packet length %d, want %d", len(buf), PacketLen)
	}
	if buf[0] != Magic {
		return Frame{}, ErrBadMagic
	}

	var f Frame
	f.VU = buf[1]
	if f.VU > MaxVU {
		f.VU = MaxVU
	}
	for i := 0; i < NumBands/2; i++ {
		b := buf[2+i]
		f.Peaks[2*i] = b&0x0f + 1
		f.Peaks[2*i+1] = b>>4 + 1
	}
	return f, nil
}
