// Package state turns status lookups into the text the AFK screen shows and
// carries that text from the background refresh loop to the UI.
//
// # Overview
//
// A StatusRecord is produced by every lookup, successful or not. Translate
// maps it to a DisplayState: live channels show a live banner, the viewer
// count and the stream title; everything else (including failed lookups)
// shows the fixed offline text.
//
// # Handoff
//
// The UI toolkit owns its widget state on a single event loop, so the
// refresh loop never writes display text directly. Instead it publishes:
//
//	Producer (refresh loop):        Consumer (UI event loop):
//	┌──────────────────┐            ┌──────────────────────┐
//	│ Fetch()          │            │ <-sync.Updates()     │
//	│      ↓           │            │      ↓               │
//	│ sync.Publish()   │───────────→│ Update(displayMsg)   │
//	│  (translate)     │  (1 slot)  │      ↓               │
//	│                  │            │ View()               │
//	└──────────────────┘            └──────────────────────┘
//
// The mailbox holds one DisplayState. Publishing while an older state is
// still unread replaces it, so the UI always catches up to the most recent
// lookup and every state it receives is complete.
//
// # Errors
//
// Failed lookups are logged at warn level and otherwise look exactly like an
// offline channel.
package state
