// Package app is the composition root for the analyzer.
//
// # Overview
//
// Run wires configuration, the frame store, the data source, and the
// renderer together, then hands control to the UI. Everything that
// can fail fatally fails here, before the terminal enters the alt
// screen.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read settings, apply flag overrides
//	       ├─────> prefs.Load()      Restore style and scheme
//	       ├─────> source provider   Built-in or file-backed demo table
//	       ├─────> state.Store{}     Shared frame container
//	       ├─────> feed.Start()      Serial reader goroutine (live mode)
//	       └─────> ui.Run()          Start the frame loop (blocks)
//
//	Live mode:
//	┌─────────────────────────────────────────┐
//	│ feed.Run() goroutine                    │
//	│  ├─> port.Read()                        │
//	│  ├─> Reassembler.Feed()                 │
//	│  └─> store.Publish()  (per frame)       │
//	│      └─> UI fetches via store.Since()   │
//	└─────────────────────────────────────────┘
//
// In demo mode no goroutine runs; the UI publishes from the pattern
// table inside its own tick handler.
package app
