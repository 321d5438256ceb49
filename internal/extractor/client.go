package extractor

import (
	"context"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"

	"github.com/umget/umget/internal/model"
)

// Timeout and cadence constants
const (
	DefaultProbeTimeout     = 60 * time.Second
	DefaultProgressInterval = 500 * time.Millisecond
)

// Client drives the yt-dlp binary. It is stateless between calls; one probe
// or download runs at a time per session.
type Client struct {
	probeTimeout     time.Duration
	progressInterval time.Duration
}

// NewClient creates a client with default timeouts.
func NewClient() *Client {
	return &Client{
		probeTimeout:     DefaultProbeTimeout,
		progressInterval: DefaultProgressInterval,
	}
}

// SetProbeTimeout sets the timeout for metadata queries.
func (c *Client) SetProbeTimeout(timeout time.Duration) {
	c.probeTimeout = timeout
}

// Probe issues a metadata query. A flat query skips per-entry format
// enumeration and is used for playlist classification; a detailed query
// returns the full format catalog for the single item named by the URL.
func (c *Client) Probe(ctx context.Context, url string, flat bool) (*model.ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	dl := ytdlp.New().Quiet().SkipDownload().DumpSingleJSON()
	if flat {
		dl = dl.FlatPlaylist()
	} else {
		dl = dl.NoPlaylist()
	}

	logrus.Debugf("extractor: probing %s (flat=%v)", url, flat)
	res, err := dl.Run(ctx, url)
	if err != nil {
		return nil, &model.ProbeError{Err: err}
	}
	return parseProbe([]byte(res.Stdout))
}

// Download hands a plan to yt-dlp and relays discrete progress events until
// the transfer completes or fails. The returned error's last line is the
// user-displayable summary.
func (c *Client) Download(ctx context.Context, plan model.DownloadPlan, url string, onProgress func(model.Progress)) error {
	dl := ytdlp.New().
		Format(plan.Selector).
		Output(plan.OutputTemplate).
		ForceOverwrites()

	if plan.NoPlaylist {
		dl = dl.NoPlaylist()
	}
	if plan.IgnoreErrors {
		dl = dl.IgnoreErrors()
	}

	for _, pp := range plan.PostProcessing {
		switch pp.Kind {
		case model.PostProcessExtractAudio:
			dl = dl.ExtractAudio().AudioFormat(pp.Codec).AudioQuality(pp.Bitrate + "K")
		case model.PostProcessRemux:
			dl = dl.RemuxVideo(pp.Container)
		}
	}

	if onProgress != nil {
		dl.ProgressFunc(c.progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(progressFromUpdate(update))
		})
	}

	logrus.Debugf("extractor: downloading %s with selector %q", url, plan.Selector)
	_, err := dl.Run(ctx, url)
	return err
}

// progressFromUpdate converts a yt-dlp progress update into the domain event.
func progressFromUpdate(u ytdlp.ProgressUpdate) model.Progress {
	p := model.Progress{
		DownloadedBytes: int64(u.DownloadedBytes),
		TotalBytes:      int64(u.TotalBytes),
	}
	if u.Info != nil {
		if u.Info.PlaylistIndex != nil {
			p.PlaylistIndex = int(*u.Info.PlaylistIndex)
		}
		if u.Info.PlaylistCount != nil {
			p.PlaylistCount = int(*u.Info.PlaylistCount)
		}
	}
	return p
}
