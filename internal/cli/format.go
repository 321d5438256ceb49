package cli

import (
	"fmt"

	"github.com/umget/umget/internal/model"
)

// offerLine renders one offer menu entry: the label plus the size estimate.
func offerLine(o model.Offer) string {
	return fmt.Sprintf("%s (%s)", o.Label, o.DisplaySize())
}

// progressLine renders one in-place progress update. Unknown totals fall
// back to a running byte count; playlist downloads get an item counter.
func progressLine(p model.Progress) string {
	var line string
	if p.TotalBytes > 0 {
		line = fmt.Sprintf("%5.1f%% of %s", p.Fraction()*100, model.FormatSize(p.TotalBytes))
	} else {
		line = fmt.Sprintf("%s downloaded", model.FormatSize(p.DownloadedBytes))
	}
	if p.PlaylistCount > 0 {
		line = fmt.Sprintf("[%d/%d] %s", p.PlaylistIndex, p.PlaylistCount, line)
	}
	return line
}

// playlistPrompt renders the playlist menu question, naming the entry count
// when the extractor reported one.
func playlistPrompt(entryCount int) string {
	if entryCount > 0 {
		return fmt.Sprintf("This URL is a playlist with %d entries. What would you like to do?", entryCount)
	}
	return "This URL is a playlist. What would you like to do?"
}
