package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Key-value backends and stores return
// these (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: key or record does not exist
// - ErrCorrupt: a persisted value could not be decoded
// - ErrInvalidState: entity in wrong state for requested operation
// - ErrUnavailable: backend temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrCorrupt      = errors.New("corrupt value")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
