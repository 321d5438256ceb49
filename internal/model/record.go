package model

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// StreamKind classifies a stream record by the codecs it carries.
type StreamKind int

const (
	// KindVideoOnly is a stream with a video codec and no audio codec.
	KindVideoOnly StreamKind = iota

	// KindAudioOnly is a stream with an audio codec and no video codec.
	KindAudioOnly

	// KindCombined is a pre-merged stream carrying both codecs.
	KindCombined
)

// String returns the string representation of StreamKind
func (k StreamKind) String() string {
	switch k {
	case KindVideoOnly:
		return "video-only"
	case KindAudioOnly:
		return "audio-only"
	case KindCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// StreamRecord is one rendition descriptor from the extractor's format
// catalog. It is query-scoped and immutable. Numeric fields use zero for
// "not reported"; size arithmetic treats unknown as zero and display as N/A.
type StreamRecord struct {
	ID             string
	Kind           StreamKind
	Container      string  // e.g. "mp4", "webm", "m4a"
	Height         int     // vertical resolution, 0 if unknown
	Resolution     string  // display form like "1920x1080", may be empty
	VideoBitrate   float64 // tbr in kbps, 0 if unreported
	AudioBitrate   float64 // abr in kbps, 0 if unreported
	Filesize       int64   // exact size in bytes, 0 if unreported
	FilesizeApprox int64   // approximate size in bytes, 0 if unreported
}

// EffectiveSize returns the exact size if reported, the approximate size
// otherwise, and zero when neither is known.
func (r StreamRecord) EffectiveSize() int64 {
	if r.Filesize > 0 {
		return r.Filesize
	}
	return r.FilesizeApprox
}

// HasSize reports whether the record carries any size information.
func (r StreamRecord) HasSize() bool {
	return r.Filesize > 0 || r.FilesizeApprox > 0
}

// DisplayResolution returns the extractor-provided resolution string, or a
// "<height>p" form derived from Height when the extractor omitted it.
func (r StreamRecord) DisplayResolution() string {
	if r.Resolution != "" {
		return r.Resolution
	}
	if r.Height > 0 {
		return fmt.Sprintf("%dp", r.Height)
	}
	return "unknown"
}

// FormatSize converts a byte count to a human-readable form. Unknown sizes
// (zero or negative) display as "N/A".
func FormatSize(size int64) string {
	if size <= 0 {
		return "N/A"
	}
	return humanize.Bytes(uint64(size))
}
