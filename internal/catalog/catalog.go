package catalog

// Package catalog normalizes the raw format records returned by the extractor
// for one media item into typed views the selection engine consumes. The
// transform is pure: missing or malformed fields degrade to unknown values,
// never to errors.

import (
	"github.com/samber/lo"

	"github.com/umget/umget/internal/model"
)

// CanonicalVideoContainer restricts the video-only view to one container so
// per-tier comparisons stay apples-to-apples.
const CanonicalVideoContainer = "mp4"

// Catalog is the normalized view over one extractor query's format records.
type Catalog struct {
	records []model.StreamRecord
}

// New builds a catalog from raw records. The input slice is not retained.
func New(records []model.StreamRecord) *Catalog {
	c := &Catalog{records: make([]model.StreamRecord, len(records))}
	copy(c.records, records)
	return c
}

// Len returns the total number of raw records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// VideoOnly returns video-only streams in the canonical container that report
// a video bitrate, in catalog order.
func (c *Catalog) VideoOnly() []model.StreamRecord {
	return lo.Filter(c.records, func(r model.StreamRecord, _ int) bool {
		return r.Kind == model.KindVideoOnly &&
			r.VideoBitrate > 0 &&
			r.Container == CanonicalVideoContainer
	})
}

// AudioOnly returns audio-only streams that report an audio bitrate, in
// catalog order.
func (c *Catalog) AudioOnly() []model.StreamRecord {
	return lo.Filter(c.records, func(r model.StreamRecord, _ int) bool {
		return r.Kind == model.KindAudioOnly && r.AudioBitrate > 0
	})
}

// Combined returns pre-merged streams carrying both codecs, in catalog order.
func (c *Catalog) Combined() []model.StreamRecord {
	return lo.Filter(c.records, func(r model.StreamRecord, _ int) bool {
		return r.Kind == model.KindCombined
	})
}
