package repositories

import "errors"

var (
	// ErrNotFound is returned when no record matches the given ID.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an ID is not in the format the store generates.
	ErrInvalidID = errors.New("invalid id")
)
