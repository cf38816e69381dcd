package state

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestTranslate_Scenarios(t *testing.T) {
	offline := DisplayState{
		StatusLine: "⚪️ You are Offline...",
		ViewerLine: "Go online to see your viewers",
		TitleLine:  "Untitled Stream",
	}

	cases := []struct {
		name string
		rec  StatusRecord
		want DisplayState
	}{
		{
			name: "live",
			rec:  StatusRecord{Live: true, ViewerCount: 42, Title: "Late night coding"},
			want: DisplayState{
				StatusLine: "🔴 Live on Twitch!",
				ViewerLine: "viewer: 42",
				TitleLine:  "Late night coding",
				Live:       true,
			},
		},
		{
			name: "title kept verbatim",
			rec:  StatusRecord{Live: true, ViewerCount: 1, Title: "  padded title  "},
			want: DisplayState{
				StatusLine: "🔴 Live on Twitch!",
				ViewerLine: "viewer: 1",
				TitleLine:  "  padded title  ",
				Live:       true,
			},
		},
		{
			name: "title with tabs and newline",
			rec:  StatusRecord{Live: true, ViewerCount: 3, Title: "\tmy stream\n"},
			want: DisplayState{
				StatusLine: "🔴 Live on Twitch!",
				ViewerLine: "viewer: 3",
				TitleLine:  "\tmy stream\n",
				Live:       true,
			},
		},
		{"offline", StatusRecord{}, offline},
		{"timeout", StatusRecord{Err: "timeout"}, offline},
		{"offline ignores stale fields", StatusRecord{ViewerCount: 9, Title: "old", Err: "status 500"}, offline},
		{
			name: "blank title",
			rec:  StatusRecord{Live: true, ViewerCount: 0, Title: "   "},
			want: DisplayState{
				StatusLine: "🔴 Live on Twitch!",
				ViewerLine: "viewer: 0",
				TitleLine:  "No Title",
				Live:       true,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Translate(tc.rec); got != tc.want {
				t.Fatalf("Translate(%+v) = %+v, want %+v", tc.rec, got, tc.want)
			}
		})
	}
}

func TestTranslate_LiveCarriesExactViewerCount(t *testing.T) {
	for _, n := range []int{0, 1, 999, 1000, 123456789} {
		got := Translate(StatusRecord{Live: true, ViewerCount: n, Title: "t"})
		if !strings.Contains(got.StatusLine, "🔴") {
			t.Fatalf("StatusLine = %q, want live indicator", got.StatusLine)
		}
		if !strings.Contains(got.ViewerLine, strconv.Itoa(n)) {
			t.Fatalf("ViewerLine = %q, want it to contain %d", got.ViewerLine, n)
		}
		if got.TitleLine != "t" {
			t.Fatalf("TitleLine = %q, want t", got.TitleLine)
		}
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	rec := StatusRecord{
		Live:        true,
		ViewerCount: 7,
		Title:       "speedrun",
		FetchedAt:   time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
	}
	first := Translate(rec)
	second := Translate(rec)
	if first != second {
		t.Fatalf("Translate not idempotent: %+v vs %+v", first, second)
	}
	if !first.UpdatedAt.Equal(rec.FetchedAt) {
		t.Fatalf("UpdatedAt = %v, want %v", first.UpdatedAt, rec.FetchedAt)
	}
}

func TestLoading(t *testing.T) {
	got := Loading()
	if got.StatusLine != "Loading Twitch Data..." || got.ViewerLine != "" || got.TitleLine != "" {
		t.Fatalf("Loading() = %+v", got)
	}
}
