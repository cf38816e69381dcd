// Package config loads the Twitch credentials the AFK screen needs.
//
// # Overview
//
// The config file is TOML with a single [Twitch] table:
//
//	[Twitch]
//	client_id = "abc123"
//	access_token = "0123456789abcdef"
//	user_login = "my_channel"
//
// All three keys are required. Values are trimmed; a blank value counts as
// missing.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/afkscreen/twitch.config.toml
//
// Tilde paths are expanded and relative paths made absolute.
//
// # Error Handling
//
// Unlike most settings, credentials have no sensible default, so a missing
// file or key is fatal: Load returns a *MissingKeyError naming every absent
// key. It matches ErrIncomplete with errors.Is, which is how the command
// decides to print the "fill in your config" hint and exit before any UI is
// created. Unreadable files and TOML syntax errors are returned wrapped
// ("open config", "read config", "parse config").
//
// The returned Config is an immutable value passed explicitly to the Twitch
// client; there is no global state.
package config
