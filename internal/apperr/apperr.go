// Package apperr defines the engine's error taxonomy (spec §7): callers
// compare against these sentinels with errors.Is rather than matching
// error strings.
package apperr

import "errors"

var (
	// ErrConfig covers missing/invalid configuration or a version
	// mismatch between the engine and the version tofu.config requires.
	ErrConfig = errors.New("config error")

	// ErrNotFound covers an asset absent from every mounted provider.
	ErrNotFound = errors.New("not found")

	// ErrDecode covers a malformed image, archive, shader, or script.
	ErrDecode = errors.New("decode failed")

	// ErrResource covers allocation or capacity failures (cache full and
	// unable to evict, texture upload failure, and so on).
	ErrResource = errors.New("resource error")

	// ErrPlatform covers window/context/audio-device init failure.
	ErrPlatform = errors.New("platform error")

	// ErrScript covers a runtime exception raised by script code, caught
	// at a phase boundary.
	ErrScript = errors.New("script error")
)

// Wrap annotates err with msg while preserving errors.Is matching against
// the given sentinel.
func Wrap(sentinel error, msg string, err error) error {
	if err == nil {
		return &wrapped{sentinel: sentinel, msg: msg}
	}
	return &wrapped{sentinel: sentinel, msg: msg + ": " + err.Error(), cause: err}
}

type wrapped struct {
	sentinel error
	msg      string
	cause    error
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.sentinel }
func (w *wrapped) Cause() error  { return w.cause }
