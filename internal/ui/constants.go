package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 420
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	AppTitle       = "Universal Media Downloader"
	URLPlaceholder = "Paste a video or playlist URL"

	FetchButtonLabel    = "Fetch"
	DownloadButtonLabel = "Download"
	BackButtonLabel     = "Go back"
)
