package session

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/umget/umget/internal/catalog"
	"github.com/umget/umget/internal/download"
	"github.com/umget/umget/internal/extractor"
	"github.com/umget/umget/internal/model"
	"github.com/umget/umget/internal/platform"
	"github.com/umget/umget/internal/selection"
)

// State identifies where the session is in the per-URL lifecycle.
type State string

const (
	StateAwaitingURL  State = "AwaitingURL"
	StateProbing      State = "Probing"
	StateSinglePath   State = "SinglePath"
	StatePlaylistMenu State = "PlaylistMenu"
	StateDownloading  State = "Downloading"
	StateComplete     State = "Complete"
	StateFailed       State = "Failed"
)

// Fixed user-facing messages for the two recognized failure classes.
const (
	DRMMessage       = "Error: This content is protected by DRM and cannot be downloaded."
	NoFormatsMessage = "Error: No downloadable formats were found for this URL."
)

// Session drives the URL loop: prompt, probe, classify, choose, download.
// It is single-owner and sequential; one URL is fully resolved before the
// next prompt, and no per-URL state outlives the URL that produced it.
type Session struct {
	prober    extractor.Prober
	downloads download.Downloader
	front     FrontEnd
	roots     platform.MediaRoots
	engineCfg selection.Config

	// in-flight context for the current download, read by the job callback
	current model.MediaContext
	plan    model.DownloadPlan
	phased  bool // post-processing phase message already emitted

	state State
}

// New wires a session over its collaborators. The downloader's update
// callback is claimed here; the session is its only consumer.
func New(prober extractor.Prober, downloads download.Downloader, front FrontEnd, roots platform.MediaRoots, cfg selection.Config) *Session {
	s := &Session{
		prober:    prober,
		downloads: downloads,
		front:     front,
		roots:     roots,
		engineCfg: cfg,
		state:     StateAwaitingURL,
	}
	downloads.SetUpdateCallback(s.onJobUpdate)
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Run loops over URLs from the front end until it reports exhaustion or the
// context is cancelled. Every per-URL error becomes an event; Run itself only
// returns on user exit or interrupt.
func (s *Session) Run(ctx context.Context) {
	type answer struct {
		url string
		ok  bool
	}

	for {
		s.setState(StateAwaitingURL)
		if ctx.Err() != nil {
			return
		}

		// The prompt may block on stdin or a widget indefinitely, so it runs
		// off the loop goroutine and races the interrupt. Prompts stay
		// sequential: the next one starts only after this one answered.
		next := make(chan answer, 1)
		go func() {
			url, ok := s.front.NextURL()
			next <- answer{url: url, ok: ok}
		}()

		select {
		case <-ctx.Done():
			return
		case a := <-next:
			if !a.ok {
				return
			}
			if a.url == "" {
				s.status("Please enter a URL.")
				continue
			}
			s.processURL(ctx, a.url)
		}
	}
}

// processURL resolves exactly one URL from probe to terminal event.
func (s *Session) processURL(ctx context.Context, raw string) {
	url := platform.SanitizeURL(raw)

	s.setState(StateProbing)
	s.status("Checking URL...")

	probe, err := s.prober.Probe(ctx, url, true)
	if err != nil {
		s.fail(err)
		return
	}

	if probe.IsPlaylist {
		s.playlistMenu(ctx, url, probe)
		return
	}
	s.singlePath(ctx, url)
}

// playlistMenu loops the playlist choices until a download runs or the user
// backs out to the URL prompt.
func (s *Session) playlistMenu(ctx context.Context, url string, probe *model.ProbeResult) {
	for {
		s.setState(StatePlaylistMenu)

		switch s.front.ChoosePlaylistAction(probe.EntryCount) {
		case PlaylistGoBack:
			return

		case PlaylistDownloadSingle:
			s.singlePath(ctx, url)
			return

		case PlaylistDownloadAll:
			tiers := selection.PlaylistTiers()
			idx, ok := s.front.ChooseTier(tiers)
			if !ok {
				continue // back to the playlist menu
			}
			mediaCtx := s.mediaContext(true, probe.EntryCount)
			plan := selection.PlanFromTier(tiers[idx], mediaCtx)
			s.download(ctx, url, plan, mediaCtx)
			return
		}
	}
}

// singlePath probes the full format catalog and runs the offer menu. Reached
// both for plain video URLs and for the "just this video" playlist choice.
func (s *Session) singlePath(ctx context.Context, url string) {
	s.setState(StateSinglePath)
	s.status("Fetching available formats...")

	probe, err := s.prober.Probe(ctx, url, false)
	if err != nil {
		s.fail(err)
		return
	}

	offers := selection.BuildOffers(catalog.New(probe.Records), s.engineCfg)
	if len(offers) == 0 {
		s.setState(StateFailed)
		s.front.Notify(Event{Kind: EventFailed, Message: NoFormatsMessage})
		return
	}

	idx, ok := s.front.ChooseOffer(offers)
	if !ok {
		return
	}

	mediaCtx := s.mediaContext(false, 0)
	plan := selection.PlanFromOffer(offers[idx], mediaCtx)
	s.download(ctx, url, plan, mediaCtx)
}

// download runs a plan to completion and emits the terminal event.
func (s *Session) download(ctx context.Context, url string, plan model.DownloadPlan, mediaCtx model.MediaContext) {
	s.current = mediaCtx
	s.plan = plan
	s.phased = false

	s.setState(StateDownloading)
	s.status("Starting download...")

	if _, err := s.downloads.Run(ctx, url, plan); err != nil {
		s.fail(err)
		return
	}

	s.setState(StateComplete)
	s.front.Notify(Event{Kind: EventCompleted, Message: s.completionMessage()})
}

// onJobUpdate translates download job updates into progress events, filling
// in the playlist count when the extractor omits it from progress lines.
func (s *Session) onJobUpdate(job download.Job) {
	if job.Status != download.JobStatusDownloading {
		return
	}

	p := job.Progress
	if p == (model.Progress{}) {
		return
	}
	if p.PlaylistCount == 0 && s.current.IsPlaylist {
		p.PlaylistCount = s.current.EntryCount
	}
	s.front.Notify(Event{Kind: EventProgress, Progress: p})

	if !s.phased && p.TotalBytes > 0 && p.DownloadedBytes >= p.TotalBytes && !s.current.IsPlaylist {
		if msg := phaseMessage(s.plan); msg != "" {
			s.phased = true
			s.status(msg)
		}
	}
}

// fail converts an error into a Failed event. DRM gets a fixed message; all
// other failures surface the last diagnostic line.
func (s *Session) fail(err error) {
	s.setState(StateFailed)
	logrus.Warnf("session: %v", err)

	msg := DRMMessage
	if !model.IsDRM(err) {
		msg = fmt.Sprintf("Error: %s", model.LastLine(err))
	}
	s.front.Notify(Event{Kind: EventFailed, Message: msg})
}

func (s *Session) setState(state State) {
	s.state = state
	logrus.Debugf("session: state %s", state)
}

func (s *Session) status(msg string) {
	s.front.Notify(Event{Kind: EventStatus, Message: msg})
}

func (s *Session) mediaContext(playlist bool, entries int) model.MediaContext {
	return model.MediaContext{
		IsPlaylist: playlist,
		EntryCount: entries,
		AudioRoot:  s.roots.Audio,
		VideoRoot:  s.roots.Video,
	}
}

func (s *Session) completionMessage() string {
	if s.current.IsPlaylist {
		return "Playlist download complete."
	}
	return "Download complete."
}

// phaseMessage names the post-processing step that follows a finished
// transfer, so the UI does not look stalled while ffmpeg works.
func phaseMessage(plan model.DownloadPlan) string {
	for _, pp := range plan.PostProcessing {
		switch pp.Kind {
		case model.PostProcessExtractAudio:
			return "Converting to MP3..."
		case model.PostProcessRemux:
			return "Merging into final video file..."
		}
	}
	return ""
}
