package selection

import (
	"fmt"
	"path/filepath"

	"github.com/umget/umget/internal/model"
)

// Canonical container and audio bitrates used by plan post-processing.
const (
	MergedContainer = "mp4"

	BestAudioBitrate     = "192"
	StandardAudioBitrate = "128"
	LowAudioBitrate      = "96"
)

// Output templates. Placeholders are interpreted by the external downloader,
// which is also responsible for filename sanitization.
const (
	singleTemplate   = "%(title)s - [%(id)s].%(ext)s"
	playlistTemplate = "%(playlist)s/%(playlist_index)s - %(title)s - [%(id)s].%(ext)s"
)

// PlaylistTier is one of the six canonical quality tiers offered for whole
// playlists, where probing every entry's formats would be prohibitively
// expensive. The selector is a declarative fallback chain: not every source
// exposes separable video and audio streams, so each video tier degrades to
// the best single file at or under its height cap.
type PlaylistTier struct {
	Label      string
	Selector   string
	Kind       model.MediaKind
	MP3Bitrate string // target bitrate for audio tiers
}

// PlaylistTiers returns the fixed tier menu: best/good/standard video capped
// at 1080/720/480p and best/standard/low MP3 audio.
func PlaylistTiers() []PlaylistTier {
	return []PlaylistTier{
		{Label: "Best Quality Video (up to 1080p)", Selector: videoChain(1080), Kind: model.MediaVideo},
		{Label: "Good Quality Video (up to 720p)", Selector: videoChain(720), Kind: model.MediaVideo},
		{Label: "Standard Quality Video (up to 480p)", Selector: videoChain(480), Kind: model.MediaVideo},
		{Label: "Best Quality Audio (MP3)", Selector: "bestaudio/best", Kind: model.MediaAudio, MP3Bitrate: BestAudioBitrate},
		{Label: "Standard Quality Audio (MP3)", Selector: "bestaudio[abr<=128]", Kind: model.MediaAudio, MP3Bitrate: StandardAudioBitrate},
		{Label: "Low Quality Audio (MP3)", Selector: "worstaudio/bestaudio[abr<=64]", Kind: model.MediaAudio, MP3Bitrate: LowAudioBitrate},
	}
}

func videoChain(height int) string {
	return fmt.Sprintf("bestvideo[height<=%d][ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best", height)
}

// PlanFromOffer maps a selected offer into a download plan. Audio offers
// always extract to MP3 at the best-quality bitrate; merged video offers
// always remux into the canonical container; pre-merged single files carry no
// post-processing. An offer of unknown kind is a programming error.
func PlanFromOffer(offer model.Offer, ctx model.MediaContext) model.DownloadPlan {
	plan := model.DownloadPlan{
		Selector:       offer.Selector,
		OutputTemplate: outputTemplate(root(offer.Kind, ctx), ctx.IsPlaylist),
		NoPlaylist:     true,
	}

	switch offer.Kind {
	case model.MediaAudio:
		plan.PostProcessing = []model.PostProcess{model.ExtractAudioMP3(BestAudioBitrate)}
	case model.MediaVideo:
		if offer.NeedsMerge() {
			plan.PostProcessing = []model.PostProcess{model.RemuxTo(MergedContainer)}
		}
	default:
		panic(fmt.Sprintf("selection: unknown media kind %d", offer.Kind))
	}

	return plan
}

// PlanFromTier maps a playlist tier choice into a download plan covering
// every entry.
func PlanFromTier(tier PlaylistTier, ctx model.MediaContext) model.DownloadPlan {
	plan := model.DownloadPlan{
		Selector:       tier.Selector,
		OutputTemplate: outputTemplate(root(tier.Kind, ctx), ctx.IsPlaylist),
		NoPlaylist:     !ctx.IsPlaylist,
		IgnoreErrors:   ctx.IsPlaylist,
	}

	switch tier.Kind {
	case model.MediaAudio:
		plan.PostProcessing = []model.PostProcess{model.ExtractAudioMP3(tier.MP3Bitrate)}
	case model.MediaVideo:
		plan.PostProcessing = []model.PostProcess{model.RemuxTo(MergedContainer)}
	default:
		panic(fmt.Sprintf("selection: unknown media kind %d", tier.Kind))
	}

	return plan
}

func root(kind model.MediaKind, ctx model.MediaContext) string {
	if kind == model.MediaAudio {
		return ctx.AudioRoot
	}
	return ctx.VideoRoot
}

func outputTemplate(root string, playlist bool) string {
	if playlist {
		return filepath.Join(root, playlistTemplate)
	}
	return filepath.Join(root, singleTemplate)
}
