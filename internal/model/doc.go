package model

// Package model defines domain data structures used across the app: stream
// records reported by the extractor, user-facing offers, download plans, and
// the error taxonomy. Structures are immutable value types derived once per
// extractor query and discarded after use.
