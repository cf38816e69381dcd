package twitch

// streamsResponse mirrors GET /helix/streams.
type streamsResponse struct {
	Data []Stream `json:"data"`
}

// Stream is a live stream entry from /helix/streams. Helix returns no entry
// at all for offline channels.
type Stream struct {
	ID          string  `json:"id"`
	UserLogin   string  `json:"user_login"`
	UserName    string  `json:"user_name"`
	GameName    string  `json:"game_name"`
	Type        string  `json:"type"`
	Title       *string `json:"title"`
	ViewerCount int     `json:"viewer_count"`
	StartedAt   string  `json:"started_at"`
}
