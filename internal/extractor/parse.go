package extractor

import (
	"encoding/json"
	"fmt"

	"github.com/umget/umget/internal/model"
)

// codecAbsent is the value yt-dlp reports for a missing codec.
const codecAbsent = "none"

// probeInfo mirrors the subset of yt-dlp's single-JSON dump the app consumes.
type probeInfo struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Entries       []json.RawMessage `json:"entries"`
	PlaylistCount int               `json:"playlist_count"`
	Formats       []probeFormat     `json:"formats"`
}

type probeFormat struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	VCodec         string   `json:"vcodec"`
	ACodec         string   `json:"acodec"`
	Height         *int     `json:"height"`
	Resolution     string   `json:"resolution"`
	TBR            *float64 `json:"tbr"`
	ABR            *float64 `json:"abr"`
	Filesize       *int64   `json:"filesize"`
	FilesizeApprox *int64   `json:"filesize_approx"`
}

// parseProbe decodes a single-JSON dump into a probe result. A URL is
// classified as a playlist only when the dump reports both an entries
// collection and a positive entry count.
func parseProbe(data []byte) (*model.ProbeResult, error) {
	var info probeInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decode probe response: %w", err)
	}

	result := &model.ProbeResult{
		ID:         info.ID,
		Title:      info.Title,
		IsPlaylist: len(info.Entries) > 0 && info.PlaylistCount > 0,
		EntryCount: info.PlaylistCount,
	}

	for _, f := range info.Formats {
		rec, ok := toRecord(f)
		if !ok {
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}

// toRecord maps one raw format to a stream record. Formats carrying neither
// codec (storyboards and the like) are not downloadable media and are
// dropped.
func toRecord(f probeFormat) (model.StreamRecord, bool) {
	hasVideo := f.VCodec != "" && f.VCodec != codecAbsent
	hasAudio := f.ACodec != "" && f.ACodec != codecAbsent

	var kind model.StreamKind
	switch {
	case hasVideo && hasAudio:
		kind = model.KindCombined
	case hasVideo:
		kind = model.KindVideoOnly
	case hasAudio:
		kind = model.KindAudioOnly
	default:
		return model.StreamRecord{}, false
	}

	rec := model.StreamRecord{
		ID:         f.FormatID,
		Kind:       kind,
		Container:  f.Ext,
		Resolution: f.Resolution,
	}
	if f.Height != nil {
		rec.Height = *f.Height
	}
	if f.TBR != nil {
		rec.VideoBitrate = *f.TBR
	}
	if f.ABR != nil {
		rec.AudioBitrate = *f.ABR
	}
	if f.Filesize != nil {
		rec.Filesize = *f.Filesize
	}
	if f.FilesizeApprox != nil {
		rec.FilesizeApprox = *f.FilesizeApprox
	}
	return rec, true
}
