package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeySortBySize  = "sort_offers_by_size"
	KeyMaxOffers   = "max_offers"
	KeyVerbose     = "verbose_logging"
)

// Default values
const (
	DefaultSortBySize = false
	DefaultMaxOffers  = 7
	DefaultVerbose    = false
)

// Settings manages application configuration backed by Fyne preferences.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured destination base directory.
// Empty means the platform default (Desktop) is used.
func (s *Settings) GetDownloadDirectory() string {
	return s.app.Preferences().String(KeyDownloadDir)
}

// SetDownloadDirectory sets the destination base directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetSortBySize returns whether offer menus are re-sorted by estimated size
func (s *Settings) GetSortBySize() bool {
	return s.app.Preferences().BoolWithFallback(KeySortBySize, DefaultSortBySize)
}

// SetSortBySize sets the size-sorting preference
func (s *Settings) SetSortBySize(enabled bool) {
	s.app.Preferences().SetBool(KeySortBySize, enabled)
}

// GetMaxOffers returns the offer menu length cap
func (s *Settings) GetMaxOffers() int {
	value := s.app.Preferences().Int(KeyMaxOffers)
	if value <= 0 {
		s.SetMaxOffers(DefaultMaxOffers)
		return DefaultMaxOffers
	}
	return value
}

// SetMaxOffers sets the offer menu length cap, clamped to a sane range
func (s *Settings) SetMaxOffers(count int) {
	if count < 1 {
		count = 1
	}
	if count > 20 {
		count = 20
	}
	s.app.Preferences().SetInt(KeyMaxOffers, count)
}

// GetVerbose returns whether debug logging is enabled
func (s *Settings) GetVerbose() bool {
	return s.app.Preferences().BoolWithFallback(KeyVerbose, DefaultVerbose)
}

// SetVerbose sets the debug logging preference
func (s *Settings) SetVerbose(enabled bool) {
	s.app.Preferences().SetBool(KeyVerbose, enabled)
}
