package download

// Package download executes download plans against the extractor backend. It
// tracks the lifecycle of the single in-flight job, relays progress events to
// the attached front end, and retries a failed transfer once before giving up.
