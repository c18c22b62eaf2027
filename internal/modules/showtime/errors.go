package showtime

import "errors"

var (
	ErrInvalidWeekday = errors.New("day_of_week must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidTime    = errors.New("times must be in HH:MM format")
	ErrTimeOrder      = errors.New("end_time must be after start_time")
	ErrInvalidSlot    = errors.New("timeslot must be a positive integer")
)
