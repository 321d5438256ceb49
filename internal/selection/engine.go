package selection

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/umget/umget/internal/catalog"
	"github.com/umget/umget/internal/model"
)

// DefaultMaxOffers caps the menu length so the user never scrolls a wall of
// near-identical renditions.
const DefaultMaxOffers = 7

// Tier is one target resolution the engine tries to fill with an exact-height
// video-only stream. Heights are never approximated to a nearest match.
type Tier struct {
	Name   string
	Height int
}

// DefaultTiers mirrors the canonical quality ladder.
var DefaultTiers = []Tier{
	{Name: "Best Quality", Height: 1080},
	{Name: "Good Quality", Height: 720},
	{Name: "Standard Quality", Height: 480},
}

// Config tunes the engine. The zero value gets defaults applied.
type Config struct {
	Tiers      []Tier
	MaxOffers  int
	SortBySize bool // re-sort offers by estimated size, descending
}

// BuildOffers inspects the catalog and emits an ordered list of distinct
// offers: per-tier merged video picks, one combined single-file fallback, and
// up to three audio picks. Empty categories contribute nothing; a fully empty
// catalog yields an empty list, never an error.
func BuildOffers(c *catalog.Catalog, cfg Config) []model.Offer {
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = DefaultTiers
	}
	if cfg.MaxOffers <= 0 {
		cfg.MaxOffers = DefaultMaxOffers
	}

	videos := c.VideoOnly()
	audios := c.AudioOnly()

	var offers []model.Offer

	// The engine always pairs video-only picks with the single best audio,
	// never a lesser audio with a higher video.
	bestAudio, hasAudio := bestPairingAudio(audios)
	if hasAudio {
		for _, tier := range cfg.Tiers {
			rec, ok := bestVideoAt(videos, tier.Height)
			if !ok {
				continue
			}
			offers = append(offers, model.Offer{
				Label:         fmt.Sprintf("%s Video (%s)", tier.Name, rec.DisplayResolution()),
				Selector:      rec.ID + model.MergeSeparator + bestAudio.ID,
				EstimatedSize: rec.EffectiveSize() + bestAudio.EffectiveSize(),
				Kind:          model.MediaVideo,
			})
		}
	}

	if combined := c.Combined(); len(combined) > 0 {
		best := lo.MaxBy(combined, func(a, b model.StreamRecord) bool {
			return a.Height > b.Height
		})
		offers = append(offers, model.Offer{
			Label:         fmt.Sprintf("Standard Quality Video (%s, single file)", best.DisplayResolution()),
			Selector:      best.ID,
			EstimatedSize: best.EffectiveSize(),
			Kind:          model.MediaVideo,
		})
	}

	offers = append(offers, audioOffers(audios)...)
	offers = dedupeByLabel(offers)

	if cfg.SortBySize {
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].EstimatedSize > offers[j].EstimatedSize
		})
	}

	if len(offers) > cfg.MaxOffers {
		offers = offers[:cfg.MaxOffers]
	}

	logrus.Debugf("selection: %d offers from %d catalog records", len(offers), c.Len())
	return offers
}

// bestPairingAudio picks the audio-only record with the maximum bitrate.
// Ties keep the earliest record.
func bestPairingAudio(audios []model.StreamRecord) (model.StreamRecord, bool) {
	if len(audios) == 0 {
		return model.StreamRecord{}, false
	}
	best := lo.MaxBy(audios, func(a, b model.StreamRecord) bool {
		return a.AudioBitrate > b.AudioBitrate
	})
	return best, true
}

// bestVideoAt picks the best video-only record at exactly the given height:
// records that report a size are preferred, and within that preferred subset
// (or the full subset if none report a size) the highest bitrate wins.
func bestVideoAt(videos []model.StreamRecord, height int) (model.StreamRecord, bool) {
	matches := lo.Filter(videos, func(r model.StreamRecord, _ int) bool {
		return r.Height == height
	})
	if len(matches) == 0 {
		return model.StreamRecord{}, false
	}

	sized := lo.Filter(matches, func(r model.StreamRecord, _ int) bool {
		return r.HasSize()
	})
	pool := matches
	if len(sized) > 0 {
		pool = sized
	}

	best := lo.MaxBy(pool, func(a, b model.StreamRecord) bool {
		return a.VideoBitrate > b.VideoBitrate
	})
	return best, true
}

// audioOffers emits up to three audio picks from the bitrate-descending
// ranking: the best, the median as standard quality when more than two
// records exist, and the lowest when more than one exists. Audio sizes are
// never paired with video.
func audioOffers(audios []model.StreamRecord) []model.Offer {
	if len(audios) == 0 {
		return nil
	}

	ranked := make([]model.StreamRecord, len(audios))
	copy(ranked, audios)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AudioBitrate > ranked[j].AudioBitrate
	})

	type pick struct {
		role string
		rec  model.StreamRecord
	}
	picks := []pick{{role: "Best", rec: ranked[0]}}
	if len(ranked) > 2 {
		picks = append(picks, pick{role: "Standard", rec: ranked[len(ranked)/2]})
	}
	if len(ranked) > 1 {
		picks = append(picks, pick{role: "Low", rec: ranked[len(ranked)-1]})
	}

	// Equal-bitrate picks would only differ in the role word; collapse them
	// so the menu never shows the same rendition twice.
	offers := make([]model.Offer, 0, len(picks))
	seen := make(map[int]struct{}, len(picks))
	for _, p := range picks {
		kbps := int(math.Round(p.rec.AudioBitrate))
		if _, dup := seen[kbps]; dup {
			continue
		}
		seen[kbps] = struct{}{}
		offers = append(offers, model.Offer{
			Label:         fmt.Sprintf("%s Audio (~%dkbps, MP3)", p.role, kbps),
			Selector:      p.rec.ID,
			EstimatedSize: p.rec.EffectiveSize(),
			Kind:          model.MediaAudio,
		})
	}
	return offers
}

// dedupeByLabel collapses offers with identical labels, first occurrence wins.
func dedupeByLabel(offers []model.Offer) []model.Offer {
	seen := make(map[string]struct{}, len(offers))
	out := offers[:0]
	for _, o := range offers {
		if _, dup := seen[o.Label]; dup {
			continue
		}
		seen[o.Label] = struct{}{}
		out = append(out, o)
	}
	return out
}
