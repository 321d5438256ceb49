package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureMediaRoots(t *testing.T) {
	base := filepath.Join(t.TempDir(), "media")

	roots, err := EnsureMediaRoots(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if roots.Audio != filepath.Join(base, AudioFolderName) {
		t.Errorf("audio root = %s", roots.Audio)
	}
	if roots.Video != filepath.Join(base, VideoFolderName) {
		t.Errorf("video root = %s", roots.Video)
	}

	for _, dir := range []string{roots.Audio, roots.Video} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory at %s, err=%v", dir, err)
		}
	}
}

func TestEnsureMediaRoots_ExistingDirsReused(t *testing.T) {
	base := t.TempDir()

	if _, err := EnsureMediaRoots(base); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := EnsureMediaRoots(base); err != nil {
		t.Fatalf("second call over existing dirs: %v", err)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("existing directory should not error: %v", err)
	}
}
