package cli

import (
	"strings"
	"testing"

	"github.com/umget/umget/internal/model"
)

func TestOfferLine(t *testing.T) {
	tests := []struct {
		name  string
		offer model.Offer
		want  string
	}{
		{
			name:  "sized offer",
			offer: model.Offer{Label: "Best Quality (1920x1080, MP4)", EstimatedSize: 55 << 20},
			want:  "Best Quality (1920x1080, MP4) (58 MB)",
		},
		{
			name:  "unknown size",
			offer: model.Offer{Label: "Best Audio (~128kbps, MP3)"},
			want:  "Best Audio (~128kbps, MP3) (N/A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := offerLine(tt.offer); got != tt.want {
				t.Errorf("offerLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgressLine(t *testing.T) {
	tests := []struct {
		name     string
		progress model.Progress
		contains []string
	}{
		{
			name:     "known total",
			progress: model.Progress{DownloadedBytes: 512, TotalBytes: 1024},
			contains: []string{"50.0%", "1.0 kB"},
		},
		{
			name:     "unknown total",
			progress: model.Progress{DownloadedBytes: 2048},
			contains: []string{"2.0 kB downloaded"},
		},
		{
			name:     "playlist item counter",
			progress: model.Progress{DownloadedBytes: 512, TotalBytes: 1024, PlaylistIndex: 3, PlaylistCount: 12},
			contains: []string{"[3/12]", "50.0%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := progressLine(tt.progress)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("progressLine() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func TestNextURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantURL string
		wantOK  bool
	}{
		{"plain URL", "https://example.com/watch?v=abc\n", "https://example.com/watch?v=abc", true},
		{"surrounding whitespace trimmed", "  https://example.com \n", "https://example.com", true},
		{"exit ends the loop", "exit\n", "", false},
		{"quit ends the loop", "QUIT\n", "", false},
		{"q is an ordinary URL", "q\n", "q", true},
		{"closed input ends the loop", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			front := NewTextFrontEnd(strings.NewReader(tt.input), &out)

			url, ok := front.NextURL()
			if url != tt.wantURL || ok != tt.wantOK {
				t.Errorf("NextURL() = (%q, %v), want (%q, %v)", url, ok, tt.wantURL, tt.wantOK)
			}
		})
	}
}

func TestPlaylistPrompt(t *testing.T) {
	if got := playlistPrompt(12); !strings.Contains(got, "12 entries") {
		t.Errorf("playlistPrompt(12) = %q, want the entry count named", got)
	}
	if got := playlistPrompt(0); strings.Contains(got, "0") {
		t.Errorf("playlistPrompt(0) = %q, want no count for unknown", got)
	}
}
