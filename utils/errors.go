package utils

import "errors"

// Error taxonomy shared by the gateway and services. Callers match with
// errors.Is; controllers map each to an HTTP status.
var (
	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrConflict         = errors.New("conflict")
	ErrNotFound         = errors.New("not found")
)
