// Package app wires the AFK screen together and owns the refresh loop.
//
// # Overview
//
// Run is the composition root:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read Twitch credentials (fatal if incomplete)
//	       ├─────> prefs.Load()         Optional theme / reason / title
//	       ├─────> twitch.NewClient()   Helix status lookups
//	       ├─────> state.NewSync()      Handoff to the UI event loop
//	       ├─────> NewScheduler()       Refresh loop
//	       ├─────> scheduler.Start()    Launch background refreshes
//	       └─────> program.Run()        Start the TUI (blocks)
//
// # Refresh Loop
//
// Scheduler runs one goroutine:
//
//	┌─────────────────────────────────────────┐
//	│ loop goroutine                          │
//	│  ├─> fetcher.Fetch()    (≤ 10s)         │
//	│  ├─> publisher.Publish()                │
//	│  └─> wait: ticker (5s) | Stop | ctx     │
//	└─────────────────────────────────────────┘
//
// TriggerManualRefresh runs the same fetch-and-publish step on a short-lived
// goroutine. It leaves the ticker alone, so a manual refresh two seconds
// into an interval does not move the next scheduled one. Manual and
// scheduled lookups may overlap; each publishes a complete state and the
// later publication wins.
//
// Stop is cooperative. It flips the lifecycle under the scheduler mutex,
// which is the same mutex every lookup checks before it begins, so no lookup
// starts after Stop returns. A lookup that already began is not cancelled;
// it completes and publishes once.
//
// # Error Handling
//
// Fatal (returned from Run, before any UI exists):
//   - Missing or blank [Twitch] keys (matches config.ErrIncomplete)
//   - Unreadable or malformed config file
//
// Recoverable (logged, loop continues):
//   - Any lookup failure; it is shown as the offline state
//
// There is no retry or backoff beyond the next tick.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("afkscreen failed: %v", err)
//	}
package app
