package platform

import (
	"os/exec"

	"github.com/sirupsen/logrus"
)

const FFmpegCommand = "ffmpeg"

// CheckFFmpeg reports whether ffmpeg is reachable on PATH. Stream merging and
// MP3 extraction depend on it; a missing binary is not fatal, single-file
// downloads still work, so callers only warn.
func CheckFFmpeg() bool {
	path, err := exec.LookPath(FFmpegCommand)
	if err != nil {
		logrus.Warnf("platform: ffmpeg not found on PATH, merging and MP3 conversion will fail")
		return false
	}
	logrus.Debugf("platform: ffmpeg found at %s", path)
	return true
}
