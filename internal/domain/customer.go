package domain

import "time"

// Customer is a guest who books shows. Customer records are managed outside
// this service; bookings only reference them.
type Customer struct {
	ID            int64  `json:"id" gorm:"primaryKey"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	IsMinor       bool   `json:"is_minor"`
	IsBanned      bool   `json:"is_banned"`
	CustomerNotes string `json:"customer_notes,omitempty" gorm:"type:text"`

	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// Waiver is a liability waiver version, valid between its start and end dates.
type Waiver struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// CustomerWaiver records that a customer signed a waiver version.
type CustomerWaiver struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	CustomerID int64      `json:"customer_id" validate:"required"`
	WaiverID   int64      `json:"waiver_id" validate:"required"`
	SignDate   *time.Time `json:"sign_date,omitempty"`
}
