package repository

import "errors"

// Sentinel errors recovered at the request boundary and mapped to HTTP
// statuses by the handlers.
var (
	ErrNotFound      = errors.New("record not found")
	ErrConflict      = errors.New("record already exists")
	ErrInvalidStatus = errors.New("invalid attendance status")
)
