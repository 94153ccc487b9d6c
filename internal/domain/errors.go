package domain

import "errors"

// Error kinds shared by repositories and services. Handlers map them to
// HTTP statuses; anything else is treated as a store failure.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
