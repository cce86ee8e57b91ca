package state

import (
	"testing"

	"specbar/internal/source"
)

func TestSinceIsEdgeTriggered(t *testing.T) {
	var s Store

	f := source.Frame{VU: 5}
	f.Peaks[0] = 9
	s.Publish(f)

	got, seq, fresh := s.Since(0)
	if !fresh {
		t.Fatalf("first Since after Publish not fresh")
	}
	if got != f {
		t.Fatalf("frame = %+v, want %+v", got, f)
	}

	// Same sequence seen again: not fresh, but the frame is still the
	// last-known data.
	got, _, fresh = s.Since(seq)
	if fresh {
		t.Fatalf("Since reported fresh twice for one Publish")
	}
	if got != f {
		t.Fatalf("stale read lost the last-known frame: %+v", got)
	}
}

func TestZeroStoreServesZeroFrame(t *testing.T) {
	var s Store
	got, seq, fresh := s.Since(0)
	if fresh || seq != 0 {
		t.Fatalf("empty store: fresh=%v seq=%d, want stale seq 0", fresh, seq)
	}
	if got != (source.Frame{}) {
		t.Fatalf("empty store frame = %+v, want zero", got)
	}
}

func TestPublishReplacesWholeFrame(t *testing.T) {
	var s Store

	a := source.Frame{VU: 3}
	for i := range a.Peaks {
		a.Peaks[i] = 7
	}
	s.Publish(a)

	b := source.Frame{VU: 1}
	s.Publish(b)

	got, _, _ := s.Since(0)
	if got != b {
		t.Fatalf("frame = %+v, want fully replaced %+v", got, b)
	}
}
