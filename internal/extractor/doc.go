package extractor

// Package extractor is the boundary to the external yt-dlp collaborator (via
// github.com/lrstanley/go-ytdlp): flat and detailed metadata probes, and
// download invocations built from a declarative plan. Network behavior,
// retries within a transfer, and filename sanitization all belong to yt-dlp.
