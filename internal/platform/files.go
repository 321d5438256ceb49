package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Folder names under the base destination
const (
	RootFolderName  = "Universal Media Downloader"
	AudioFolderName = "Audio"
	VideoFolderName = "Video"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// MediaRoots holds the two destination directories downloads land in. They
// are the only on-disk state the app keeps.
type MediaRoots struct {
	Base  string
	Audio string
	Video string
}

// EnsureMediaRoots creates the audio and video destination directories under
// the given base, or under <home>/Desktop/<RootFolderName> when base is
// empty. When the preferred location is not writable it falls back to the
// working directory, mirroring where the user launched from.
func EnsureMediaRoots(base string) (MediaRoots, error) {
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fallbackRoots()
		}
		base = filepath.Join(home, "Desktop", RootFolderName)
	}

	roots := MediaRoots{
		Base:  base,
		Audio: filepath.Join(base, AudioFolderName),
		Video: filepath.Join(base, VideoFolderName),
	}
	if err := createRoots(roots); err != nil {
		logrus.Warnf("platform: cannot create %s (%v), falling back to working directory", base, err)
		return fallbackRoots()
	}
	return roots, nil
}

func fallbackRoots() (MediaRoots, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	roots := MediaRoots{
		Base:  cwd,
		Audio: filepath.Join(cwd, AudioFolderName),
		Video: filepath.Join(cwd, VideoFolderName),
	}
	if err := createRoots(roots); err != nil {
		return MediaRoots{}, fmt.Errorf("create destination directories: %w", err)
	}
	return roots, nil
}

func createRoots(roots MediaRoots) error {
	for _, dir := range []string{roots.Audio, roots.Video} {
		if err := CreateDirectoryIfNotExists(dir); err != nil {
			return err
		}
	}
	return nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
