package session

import (
	"github.com/umget/umget/internal/model"
	"github.com/umget/umget/internal/selection"
)

// PlaylistAction is the user's choice on the playlist menu.
type PlaylistAction int

const (
	// PlaylistDownloadAll downloads every entry at a chosen quality tier.
	PlaylistDownloadAll PlaylistAction = iota
	// PlaylistDownloadSingle treats the URL as its lead video only.
	PlaylistDownloadSingle
	// PlaylistGoBack abandons the playlist and returns to the URL prompt.
	PlaylistGoBack
)

// EventKind discriminates the events a session emits.
type EventKind int

const (
	// EventStatus is a human-readable phase message.
	EventStatus EventKind = iota
	// EventProgress carries byte-level download progress.
	EventProgress
	// EventCompleted signals a finished download.
	EventCompleted
	// EventFailed signals a failed probe or download.
	EventFailed
)

// Event is one notification delivered to the front end. Events for a single
// URL are delivered in order; a front end never sees progress after the
// terminal event for that URL.
type Event struct {
	Kind     EventKind
	Message  string
	Progress model.Progress
}

// FrontEnd is the blocking user-interaction contract. The CLI implements it
// synchronously on stdin/stdout; the GUI bridges widget callbacks through
// channels. Choice methods return ok=false to mean "go back".
type FrontEnd interface {
	// NextURL blocks for the next URL to process. ok=false ends the session.
	NextURL() (url string, ok bool)

	// ChoosePlaylistAction presents the playlist menu for a playlist with
	// the given entry count (0 when unknown).
	ChoosePlaylistAction(entryCount int) PlaylistAction

	// ChooseOffer presents the per-video offer menu and returns the index
	// of the chosen offer.
	ChooseOffer(offers []model.Offer) (index int, ok bool)

	// ChooseTier presents the whole-playlist quality menu and returns the
	// index of the chosen tier.
	ChooseTier(tiers []selection.PlaylistTier) (index int, ok bool)

	// Notify delivers a session event. Implementations must not block
	// indefinitely; the session goroutine is the only producer.
	Notify(Event)
}
