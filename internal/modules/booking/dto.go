package booking

type CreateBookingRequest struct {
	RoomID       int64  `json:"room_id" binding:"required"`
	CustomerID   int64  `json:"customer_id" binding:"required"`
	GuestCount   int    `json:"guest_count" binding:"required"`
	OrderID      string `json:"order_id"`
	BookingDate  string `json:"booking_date"`
	ShowDate     string `json:"show_date" binding:"required"`
	ShowTimeslot int    `json:"show_timeslot" binding:"required"`
}

type UpdateBookingRequest struct {
	GuestCount   int    `json:"guest_count" binding:"required"`
	ShowDate     string `json:"show_date" binding:"required"`
	ShowTimeslot int    `json:"show_timeslot" binding:"required"`
}
