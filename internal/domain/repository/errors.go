package repository

import "errors"

// Sentinel errors returned by repositories. The application layer translates
// them into the client-facing error taxonomy.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("duplicate")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidState      = errors.New("invalid state")
)
