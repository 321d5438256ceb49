package model

// ProbeResult is the outcome of one metadata query against the extractor.
// For flat queries only the playlist fields are meaningful; for detailed
// queries Records holds the raw format catalog.
type ProbeResult struct {
	ID         string
	Title      string
	IsPlaylist bool // entries present and a positive entry count reported
	EntryCount int
	Records    []StreamRecord
}

// MediaContext carries the per-URL facts the plan builder needs.
type MediaContext struct {
	IsPlaylist bool
	EntryCount int
	AudioRoot  string
	VideoRoot  string
}

// Progress is one discrete downloading event relayed from the downloader.
type Progress struct {
	DownloadedBytes int64
	TotalBytes      int64 // 0 when the extractor cannot estimate
	PlaylistIndex   int   // 1-based, 0 outside playlists
	PlaylistCount   int   // 0 outside playlists
}

// Fraction returns completion in [0,1], or 0 when the total is unknown.
func (p Progress) Fraction() float64 {
	if p.TotalBytes <= 0 {
		return 0
	}
	f := float64(p.DownloadedBytes) / float64(p.TotalBytes)
	if f > 1 {
		f = 1
	}
	return f
}
