package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource (trip, stop, expense, packing item, or username) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation before any persistence call is made (e.g. empty required
// field, non-positive amount, out-of-range quantity).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an operation would duplicate existing state,
// such as inviting a user who is already on the trip roster.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrTransport is returned when a call to the persistence layer fails for
// any reason other than the record being absent. The cause (network,
// timeout, bad response) is deliberately not distinguished — the caller's
// remedy is the same either way: re-invoke the operation. In-memory state
// is never partially mutated when this error is returned.
// Handlers should map this to HTTP 502.
var ErrTransport = errors.New("transport error")
