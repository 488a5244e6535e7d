package sitecapture

import (
	"errors"
)

// Error types.
var (
	// ErrNavigation is the error returned when the page could not be loaded.
	ErrNavigation = errors.New("navigation failed")

	// ErrNetworkIdle is the error returned when a loaded page did not reach
	// network idle in time.
	ErrNetworkIdle = errors.New("network did not become idle")

	// ErrNoMatch is the error returned when a selector matches no element.
	ErrNoMatch = errors.New("no matching element")

	// ErrInvalidBoxModel is the error returned by Hover when the element
	// has no content quad to aim the pointer at.
	ErrInvalidBoxModel = errors.New("invalid box model")
)
