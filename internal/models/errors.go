package models

import "errors"

// Error categories surfaced to API callers. Concrete errors wrap one of these
// so handlers can map them with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrAuthentication = errors.New("authentication error")
)
