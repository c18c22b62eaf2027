package booking

import "errors"

var (
	ErrSlotTaken      = errors.New("the requested timeslot is already booked")
	ErrInvalidDate    = errors.New("dates must be in YYYY-MM-DD format")
	ErrInvalidSlot    = errors.New("show_timeslot must be a positive integer")
	ErrTooFewGuests   = errors.New("guest count is below the room minimum")
	ErrTooManyGuests  = errors.New("guest count exceeds the room maximum")
	ErrUnknownRoom    = errors.New("room does not exist")
	ErrBannedCustomer = errors.New("customer is not allowed to book")
)
