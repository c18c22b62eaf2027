package booking

import (
	"context"
	"errors"
	"time"

	"xavro/internal/domain"
	"xavro/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings  BookingRepository
	rooms     RoomRepository
	customers CustomerRepository
	payments  PaymentRepository
	publisher Publisher

	now func() time.Time
}

func NewService(bookings BookingRepository, rooms RoomRepository, customers CustomerRepository, payments PaymentRepository, publisher Publisher) *Service {
	return &Service{
		bookings:  bookings,
		rooms:     rooms,
		customers: customers,
		payments:  payments,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateBooking reserves one showtime slot on one date. The database unique
// index on (room_id, show_date, show_timeslot) is the arbiter for concurrent
// requests; a duplicate-key failure surfaces as ErrSlotTaken.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.ShowTimeslot <= 0 {
		return nil, ErrInvalidSlot
	}

	showDate, err := dateutil.ParseDate(req.ShowDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	bookingDate := dateutil.DateOnly(s.now().UTC())
	if req.BookingDate != "" {
		bookingDate, err = dateutil.ParseDate(req.BookingDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRoom
		}
		return nil, err
	}
	if req.GuestCount < room.MinCapacity {
		return nil, ErrTooFewGuests
	}
	if req.GuestCount > room.MaxCapacity {
		return nil, ErrTooManyGuests
	}

	customer, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.IsBanned {
		return nil, ErrBannedCustomer
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
	}

	b := &domain.Booking{
		RoomID:       req.RoomID,
		CustomerID:   req.CustomerID,
		GuestCount:   req.GuestCount,
		OrderID:      orderID,
		BookingDate:  bookingDate,
		ShowDate:     showDate,
		ShowTimeslot: req.ShowTimeslot,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	s.publisher.BookingCreated(b)
	return b, nil
}

// GetBooking loads one booking with its payment history attached.
func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListByBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Payments = payments

	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

func (s *Service) UpdateBooking(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	if req.ShowTimeslot <= 0 {
		return nil, ErrInvalidSlot
	}

	showDate, err := dateutil.ParseDate(req.ShowDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	if req.GuestCount < room.MinCapacity {
		return nil, ErrTooFewGuests
	}
	if req.GuestCount > room.MaxCapacity {
		return nil, ErrTooManyGuests
	}

	b.GuestCount = req.GuestCount
	b.ShowDate = showDate
	b.ShowTimeslot = req.ShowTimeslot

	if err := s.bookings.Update(ctx, b); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) CancelBooking(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.BookingCancelled(id)
	return nil
}

// isDuplicateKey recognizes a unique-index violation from either backend:
// gorm's translated error covers sqlite, the pgconn check covers a postgres
// connection without error translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
