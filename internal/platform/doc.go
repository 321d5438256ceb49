package platform

// Package platform contains filesystem and URL glue around the core: creation
// of the audio/video destination roots and normalization of known tracking
// parameters in media URLs.
