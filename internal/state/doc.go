// Package state provides the thread-safe frame store shared by the
// data producers and the render loop.
//
// The serial feed goroutine (or the demo tick) publishes complete
// amplitude frames; the UI asks for the latest frame once per render
// tick. The producer-consumer pattern:
//
//	Producer (feed/demo):          Consumer (render loop):
//	┌────────────────┐            ┌──────────────────────┐
//	│ decode frame   │            │ Since(lastSeq)       │
//	│      ↓         │───────────→│   fresh? redraw      │
//	│ store.Publish()│  (mutex)   │   stale? keep frame  │
//	└────────────────┘            └──────────────────────┘
//
// Publish replaces the whole frame under the lock, so consumers never
// see a partially updated band set. The sequence number is the
// edge-triggered redraw signal: a frame published once between two
// ticks triggers exactly one redraw, and a consumer that sees nothing
// fresh still receives the last-known frame.
package state
