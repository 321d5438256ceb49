package platform

import (
	"net/url"
	"strings"
)

// Query parameters preserved on watch URLs
const (
	VideoIDParam  = "v"
	PlaylistParam = "list"
)

// SanitizeURL strips tracking query parameters from YouTube-family URLs.
// watch URLs keep only the video and playlist identifiers; youtu.be short
// links drop their query entirely. URLs of any other site, and anything that
// does not parse, pass through unchanged. The transform is idempotent.
func SanitizeURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}

	host := parsed.Hostname()
	switch {
	case strings.Contains(host, "youtube.com") && parsed.Path == "/watch":
		query := parsed.Query()
		kept := url.Values{}
		if v := query.Get(VideoIDParam); v != "" {
			kept.Set(VideoIDParam, v)
		}
		if list := query.Get(PlaylistParam); list != "" {
			kept.Set(PlaylistParam, list)
		}
		if len(kept) == 0 {
			return raw
		}
		clean := &url.URL{
			Scheme:   parsed.Scheme,
			Host:     parsed.Host,
			Path:     parsed.Path,
			RawQuery: kept.Encode(),
		}
		return clean.String()

	case strings.Contains(host, "youtu.be"):
		clean := &url.URL{
			Scheme: parsed.Scheme,
			Host:   parsed.Host,
			Path:   parsed.Path,
		}
		return clean.String()
	}

	return raw
}
