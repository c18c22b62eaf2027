package domain

import "time"

// Booking is a concrete reservation of one showtime slot on one calendar
// date. ShowTimeslot matches the Timeslot ordinal of a Showtime with the same
// room and weekday; a booking whose slot has no matching showtime is ignored
// by the availability engine rather than rejected.
type Booking struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	RoomID       int64     `json:"room_id" validate:"required" gorm:"uniqueIndex:idx_no_double_booking"`
	CustomerID   int64     `json:"customer_id" validate:"required"`
	GuestCount   int       `json:"guest_count" validate:"required,gt=0"`
	OrderID      string    `json:"order_id"` // customer-facing reference
	BookingDate  time.Time `json:"booking_date" gorm:"type:date"`
	ShowDate     time.Time `json:"show_date" gorm:"type:date;uniqueIndex:idx_no_double_booking"`
	ShowTimeslot int       `json:"show_timeslot" gorm:"uniqueIndex:idx_no_double_booking"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// PaymentStatus tracks how much of a booking has been paid for.
type PaymentStatus string

const (
	PaymentNotPaid     PaymentStatus = "not_paid"
	PaymentPartialPaid PaymentStatus = "partial_paid"
	PaymentFullPaid    PaymentStatus = "full_paid"
)

// Payment records money received against a booking. A booking can have
// several payments (deposit plus balance).
type Payment struct {
	ID         int64         `json:"id" gorm:"primaryKey"`
	BookingID  int64         `json:"booking_id" validate:"required"`
	PaymentAmt float64       `json:"payment_amt" validate:"required,gte=0"`
	Status     PaymentStatus `json:"status" gorm:"default:not_paid"`
	CreatedAt  time.Time     `json:"created_at"`
}
