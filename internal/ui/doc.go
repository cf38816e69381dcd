// Package ui provides the Bubble Tea screen for the AFK overlay.
//
// # Architecture Overview
//
// The screen is a single tea.Model. It owns every piece of widget state:
// the three status lines, the refresh control, the away reason field, the
// theme and the help overlay. Nothing outside Update ever writes to it.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update, key handling and commands
//   - view.go: card, refresh button, reason field and footer rendering
//   - help.go: help overlay
//   - keys.go: key bindings (bubbles/key), also used by the footer help
//   - theme.go: color palettes and Lipgloss styles
//   - layout.go: sizes and text defaults
//
// # Event Flow
//
//  1. Init sets the window title and starts waitForDisplay
//  2. waitForDisplay blocks on the state.Sync mailbox in a command goroutine
//  3. A published state arrives as displayMsg; Update swaps it in whole and
//     re-arms waitForDisplay
//  4. "r" (or enter on the focused refresh button) calls
//     Refresher.TriggerManualRefresh, which returns at once; a spinner runs
//     until the next displayMsg
//  5. tab moves focus to the reason field; enter, esc or tab leave it
//  6. q, esc or ctrl+c call Refresher.Stop and then quit
//
// # Key Bindings
//
//	r / enter     Refresh now
//	tab           Edit the away reason
//	T             Cycle theme (Nightfox, Kanagawa, Slate)
//	?             Toggle help
//	q / esc       Close
//	ctrl+c        Close, even while editing
//
// # Usage Example
//
//	model := ui.New(ui.Options{
//		Updates:   publisher.Updates(),
//		Refresher: scheduler,
//		Channel:   cfg.UserLogin,
//	})
//	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
package ui
