package state

import "time"

// StatusRecord is the outcome of one status lookup. Values are never
// modified after the fetch that produced them.
type StatusRecord struct {
	Live        bool
	ViewerCount int    // only meaningful when Live
	Title       string // only meaningful when Live
	Err         string // non-empty when the lookup failed
	FetchedAt   time.Time
}

// Failed reports whether the lookup behind the record failed.
func (r StatusRecord) Failed() bool {
	return r.Err != ""
}

// DisplayState is the rendered text derived from a single StatusRecord.
type DisplayState struct {
	StatusLine string
	ViewerLine string
	TitleLine  string
	Live       bool
	UpdatedAt  time.Time
}

// Loading is shown before the first lookup completes.
func Loading() DisplayState {
	return DisplayState{StatusLine: loadingStatus}
}
