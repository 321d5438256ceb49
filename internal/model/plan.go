package model

// PostProcessKind enumerates the post-processing directives a plan may carry.
type PostProcessKind int

const (
	// PostProcessExtractAudio re-encodes the downloaded stream to an audio
	// file at a target bitrate.
	PostProcessExtractAudio PostProcessKind = iota

	// PostProcessRemux repackages a merged download into a single standard
	// container without re-encoding.
	PostProcessRemux
)

// PostProcess is one ordered post-processing directive.
type PostProcess struct {
	Kind      PostProcessKind
	Container string // remux target, e.g. "mp4"
	Codec     string // extract-audio target codec, e.g. "mp3"
	Bitrate   string // extract-audio target bitrate in kbps, e.g. "192"
}

// ExtractAudioMP3 returns an extract-audio directive targeting MP3 at the
// given bitrate.
func ExtractAudioMP3(bitrate string) PostProcess {
	return PostProcess{Kind: PostProcessExtractAudio, Codec: "mp3", Bitrate: bitrate}
}

// RemuxTo returns a remux directive targeting the given container.
func RemuxTo(container string) PostProcess {
	return PostProcess{Kind: PostProcessRemux, Container: container}
}

// DownloadPlan is the declarative request handed to the external downloader.
// It is constructed once per selection and consumed exactly once.
type DownloadPlan struct {
	Selector       string // passed opaquely as the format selection
	OutputTemplate string // path pattern with extractor placeholders
	PostProcessing []PostProcess

	// NoPlaylist restricts the download to the single item named by the URL.
	NoPlaylist bool

	// IgnoreErrors keeps a playlist download going past broken entries.
	IgnoreErrors bool
}
