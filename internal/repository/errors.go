package repository

import "errors"

// ErrStoreUnavailable is returned when the backing medium cannot be reached.
var ErrStoreUnavailable = errors.New("contact store unavailable")
