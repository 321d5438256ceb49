package selection

import (
	"strings"
	"testing"

	"github.com/umget/umget/internal/model"
)

func testContext(playlist bool) model.MediaContext {
	return model.MediaContext{
		IsPlaylist: playlist,
		AudioRoot:  "/media/Audio",
		VideoRoot:  "/media/Video",
	}
}

func TestPlanFromOffer_MergedVideo(t *testing.T) {
	offer := model.Offer{Label: "Best Quality Video (1080p)", Selector: "137+140", Kind: model.MediaVideo}
	plan := PlanFromOffer(offer, testContext(false))

	if plan.Selector != "137+140" {
		t.Errorf("selector = %s", plan.Selector)
	}
	if !strings.HasPrefix(plan.OutputTemplate, "/media/Video/") {
		t.Errorf("video offer must target the video root, got %s", plan.OutputTemplate)
	}
	if !strings.HasSuffix(plan.OutputTemplate, "%(title)s - [%(id)s].%(ext)s") {
		t.Errorf("single-item template mismatch: %s", plan.OutputTemplate)
	}
	if len(plan.PostProcessing) != 1 || plan.PostProcessing[0].Kind != model.PostProcessRemux {
		t.Errorf("merged video must carry exactly one remux directive, got %v", plan.PostProcessing)
	}
	if plan.PostProcessing[0].Container != "mp4" {
		t.Errorf("remux container = %s", plan.PostProcessing[0].Container)
	}
	if !plan.NoPlaylist {
		t.Error("single-item plans must restrict to the single video")
	}
}

func TestPlanFromOffer_SingleFileVideo(t *testing.T) {
	offer := model.Offer{Label: "Standard Quality Video (480p, single file)", Selector: "18", Kind: model.MediaVideo}
	plan := PlanFromOffer(offer, testContext(false))

	if len(plan.PostProcessing) != 0 {
		t.Errorf("pre-merged selection must carry no post-processing, got %v", plan.PostProcessing)
	}
}

func TestPlanFromOffer_Audio(t *testing.T) {
	offer := model.Offer{Label: "Best Audio (~128kbps, MP3)", Selector: "140", Kind: model.MediaAudio}
	plan := PlanFromOffer(offer, testContext(false))

	if !strings.HasPrefix(plan.OutputTemplate, "/media/Audio/") {
		t.Errorf("audio offer must target the audio root, got %s", plan.OutputTemplate)
	}
	if len(plan.PostProcessing) != 1 {
		t.Fatalf("audio selection must carry one directive, got %v", plan.PostProcessing)
	}
	pp := plan.PostProcessing[0]
	if pp.Kind != model.PostProcessExtractAudio || pp.Codec != "mp3" || pp.Bitrate != BestAudioBitrate {
		t.Errorf("audio directive = %+v", pp)
	}
}

func TestPlanFromOffer_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for malformed offer kind")
		}
	}()
	PlanFromOffer(model.Offer{Label: "x", Selector: "1", Kind: model.MediaKind(42)}, testContext(false))
}

func TestPlaylistTiers(t *testing.T) {
	tiers := PlaylistTiers()
	if len(tiers) != 6 {
		t.Fatalf("expected 6 canonical tiers, got %d", len(tiers))
	}

	best := tiers[0]
	if best.Selector != "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best" {
		t.Errorf("best video tier fallback chain = %s", best.Selector)
	}

	// Audio tiers descend through the bitrate ceilings.
	if tiers[3].MP3Bitrate != "192" || tiers[4].MP3Bitrate != "128" || tiers[5].MP3Bitrate != "96" {
		t.Errorf("audio tier bitrates = %s/%s/%s", tiers[3].MP3Bitrate, tiers[4].MP3Bitrate, tiers[5].MP3Bitrate)
	}
}

func TestPlanFromTier_PlaylistVideo(t *testing.T) {
	plan := PlanFromTier(PlaylistTiers()[1], testContext(true))

	if !strings.Contains(plan.OutputTemplate, "%(playlist)s") || !strings.Contains(plan.OutputTemplate, "%(playlist_index)s") {
		t.Errorf("playlist template must nest under the playlist name, got %s", plan.OutputTemplate)
	}
	if !plan.IgnoreErrors {
		t.Error("playlist plans must skip broken entries")
	}
	if plan.NoPlaylist {
		t.Error("playlist plans must not restrict to a single item")
	}
	if len(plan.PostProcessing) != 1 || plan.PostProcessing[0].Kind != model.PostProcessRemux {
		t.Errorf("video tier must remux, got %v", plan.PostProcessing)
	}
}

func TestPlanFromTier_PlaylistAudio(t *testing.T) {
	plan := PlanFromTier(PlaylistTiers()[5], testContext(true))

	if plan.Selector != "worstaudio/bestaudio[abr<=64]" {
		t.Errorf("low audio selector = %s", plan.Selector)
	}
	if !strings.HasPrefix(plan.OutputTemplate, "/media/Audio/") {
		t.Errorf("audio tier must target the audio root, got %s", plan.OutputTemplate)
	}
	pp := plan.PostProcessing[0]
	if pp.Kind != model.PostProcessExtractAudio || pp.Bitrate != "96" {
		t.Errorf("low audio directive = %+v", pp)
	}
}
