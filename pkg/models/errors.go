package models

import "errors"

// ErrValidation marks bad user input. Nothing is persisted when it is returned.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned when a pending expense does not exist or is not visible to the caller.
var ErrNotFound = errors.New("pending expense not found")

// ErrPersistence marks a failed server-side write.
var ErrPersistence = errors.New("persistence failure")
