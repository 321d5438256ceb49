package ui

// Package ui contains the Fyne-based desktop user interface. The main window
// implements the session front-end contract: widget callbacks are bridged to
// the session goroutine through channels, and session events are marshalled
// back onto the Fyne thread for rendering.
