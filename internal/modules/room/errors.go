package room

import "errors"

var (
	ErrMaxCapacity   = errors.New("max capacity must be a positive integer")
	ErrMinCapacity   = errors.New("min capacity must be a positive integer")
	ErrCapacityOrder = errors.New("min capacity must not exceed max capacity")
	ErrDuration      = errors.New("duration must be a positive integer")
	ErrInvalidDate   = errors.New("invalid date format, expected YYYY-MM-DD")
)
