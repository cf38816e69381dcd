package state

import (
	"strconv"
	"strings"
)

const (
	loadingStatus = "Loading Twitch Data..."

	liveStatus     = "🔴 Live on Twitch!"
	viewerPrefix   = "viewer: "
	untitledLive   = "No Title"
	offlineStatus  = "⚪️ You are Offline..."
	offlineViewers = "Go online to see your viewers"
	offlineTitle   = "Untitled Stream"
)

// Translate maps a StatusRecord to the text the screen shows. Failed
// lookups render exactly like an offline channel.
func Translate(rec StatusRecord) DisplayState {
	if !rec.Live {
		return DisplayState{
			StatusLine: offlineStatus,
			ViewerLine: offlineViewers,
			TitleLine:  offlineTitle,
			UpdatedAt:  rec.FetchedAt,
		}
	}

	viewers := rec.ViewerCount
	if viewers < 0 {
		viewers = 0
	}
	title := rec.Title
	if strings.TrimSpace(title) == "" {
		title = untitledLive
	}
	return DisplayState{
		StatusLine: liveStatus,
		ViewerLine: viewerPrefix + strconv.Itoa(viewers),
		TitleLine:  title,
		Live:       true,
		UpdatedAt:  rec.FetchedAt,
	}
}
