package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the per-URL failure taxonomy. Every one of these is
// caught at the session boundary and shown to the user; none is fatal to the
// session loop.
var (
	// ErrDRMProtected marks content the extractor refuses because of DRM.
	ErrDRMProtected = errors.New("content is protected by DRM")

	// ErrNoFormats marks a catalog with zero downloadable streams.
	ErrNoFormats = errors.New("no downloadable formats found")
)

// ProbeError wraps a failure of the metadata query.
type ProbeError struct {
	Err error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe failed: %v", e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// DownloadError wraps a failure propagated from the external downloader.
type DownloadError struct {
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download failed: %v", e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// IsDRM reports whether an error denotes DRM-protected content, either via
// the sentinel or via the extractor's error text mentioning DRM.
func IsDRM(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDRMProtected) {
		return true
	}
	return strings.Contains(err.Error(), "DRM")
}

// LastLine extracts the user-displayable summary from an error: the last
// non-empty line of the innermost error's message. Unwrapping first keeps
// wrapper prefixes like "download failed:" out of the summary.
func LastLine(err error) string {
	if err == nil {
		return ""
	}
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			break
		}
		err = inner
	}
	lines := strings.Split(strings.TrimSpace(err.Error()), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return err.Error()
}
