package thumbnails

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Handlers map them onto HTTP statuses with errors.Is.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)

// Specific not-found causes. Both match ErrNotFound.
var (
	ErrVideoNotFound     = fmt.Errorf("%w: couldn't find video", ErrNotFound)
	ErrThumbnailNotFound = fmt.Errorf("%w: thumbnail not found", ErrNotFound)
)

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, msg)
}
