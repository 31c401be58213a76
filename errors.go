package mdview

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrReady indicates the parser never became ready, so no load ran.
	ErrReady = errors.New("failed to load commonmark")

	// ErrReadyTimeout indicates the ready wait ran out of time.
	ErrReadyTimeout = errors.New("timed out")

	// ErrLoad indicates a fetch, decode, parse or render failure during a load.
	ErrLoad = errors.New("mdview: load failed")
)
