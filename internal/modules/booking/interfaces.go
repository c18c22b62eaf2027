package booking

import (
	"context"

	"xavro/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type PaymentRepository interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
}

// Publisher receives booking lifecycle notifications. The websocket hub
// implements it; tests stub it out.
type Publisher interface {
	BookingCreated(b *domain.Booking)
	BookingCancelled(bookingID int64)
}
