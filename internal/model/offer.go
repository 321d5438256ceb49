package model

import "strings"

// MergeSeparator joins a video-only and an audio-only format id into a
// selector that signals merge-required to the downloader.
const MergeSeparator = "+"

// MediaKind distinguishes video and audio menu entries.
type MediaKind int

const (
	MediaVideo MediaKind = iota
	MediaAudio
)

// String returns the string representation of MediaKind
func (k MediaKind) String() string {
	if k == MediaAudio {
		return "audio"
	}
	return "video"
}

// Offer is one user-facing menu entry produced by the selection engine.
// Label is the deduplication key and is never empty.
type Offer struct {
	Label         string
	Selector      string // one format id, or "video+audio" for merges
	EstimatedSize int64  // sum of constituent records' effective sizes
	Kind          MediaKind
}

// NeedsMerge reports whether the selector pairs two streams that must be
// merged after download.
func (o Offer) NeedsMerge() bool {
	return strings.Contains(o.Selector, MergeSeparator)
}

// DisplaySize returns the estimated size in human-readable form, "N/A" when
// unknown.
func (o Offer) DisplaySize() string {
	return FormatSize(o.EstimatedSize)
}
