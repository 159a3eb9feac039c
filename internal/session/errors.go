package session

import "errors"

var (
	// ErrUnknownFilter is returned when a filter token names neither "all"
	// nor a category present in the catalog.
	ErrUnknownFilter = errors.New("unknown filter")
	// ErrUnknownLink is returned for a navigation token outside the nav group.
	ErrUnknownLink = errors.New("unknown navigation link")
	// ErrUnknownEntry is returned when a selection names a pizza that is not
	// in the catalog.
	ErrUnknownEntry = errors.New("unknown menu entry")
	// ErrModalClosed is returned when an action is confirmed with no entry open.
	ErrModalClosed = errors.New("modal is closed")
	// ErrPriceMismatch is returned when a confirmed price differs from the
	// catalog price of the open entry.
	ErrPriceMismatch = errors.New("price does not match the menu")
)
