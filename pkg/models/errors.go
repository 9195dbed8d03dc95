package models

import "errors"

var (
	// ErrNotFound is returned when an element or entry is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when an element id is already taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a value or configuration is not valid.
	ErrNotValid = errors.New("not valid")
)
