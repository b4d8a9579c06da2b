package errs

import "errors"

// Sentinels for the purchase-request workflow. Use cases mark concrete
// errors with one of these and the HTTP layer maps them to a status.
var (
	// 401: no usable identity on the request
	ErrUnauthenticated = errors.New("unauthenticated")

	// 400: input rejected before anything is persisted
	ErrValidation = errors.New("validation failed")

	// 403: caller is not the designated approver
	ErrForbidden = errors.New("forbidden")

	// 404: unknown request or already decided
	ErrNotFound = errors.New("not found")

	// 500: store unreachable or write failed
	ErrStoreFailure = errors.New("store failure")
)
