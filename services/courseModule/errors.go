package courseModule

import "errors"

var (
	// ErrNotFound covers both a missing course/module and one the caller does not own.
	ErrNotFound = errors.New("not found")

	ErrOrderIndexTaken = errors.New("order_index already used in this course")
	ErrInvalidReorder  = errors.New("module ids must list every module of the course exactly once")
	ErrInvalidInput    = errors.New("invalid input")
)
