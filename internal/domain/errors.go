package domain

import "errors"

// ErrLookupUnavailable marks transport-level lookup failures. Callers
// check for it with errors.Is and fail open.
var ErrLookupUnavailable = errors.New("domain lookup service unavailable")
