// Package twitch looks up a channel's live status through the Twitch Helix
// API.
//
// # Overview
//
// Client issues GET /helix/streams?user_login=<login> with the Client-ID and
// bearer token headers Helix requires. A non-empty data array means the
// channel is live; an empty one means offline.
//
// # Error Handling
//
// FetchStream returns ordinary wrapped errors for transport failures, non-2xx
// responses and undecodable payloads. Fetch, which is what the refresh loop
// calls, never fails: it folds the error text into state.StatusRecord.Err
// and reports the channel as offline. Every request is bounded by a 10
// second timeout.
//
// # Usage Example
//
//	client, err := twitch.NewClient(twitch.Credentials{
//		ClientID:    cfg.ClientID,
//		AccessToken: cfg.AccessToken,
//	}, cfg.UserLogin)
//	if err != nil {
//		return err
//	}
//	rec := client.Fetch(ctx)
package twitch
