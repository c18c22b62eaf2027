package availability

import (
	"context"
	"time"

	"xavro/internal/domain"
)

// ShowtimeRepository supplies the recurring weekly schedule.
type ShowtimeRepository interface {
	ListByRoomAndWeekday(ctx context.Context, roomID int64, dayOfWeek int) ([]domain.Showtime, error)
}

// BookingRepository supplies the concrete reservations for one show date.
type BookingRepository interface {
	ListByRoomAndShowDate(ctx context.Context, roomID int64, showDate time.Time) ([]domain.Booking, error)
}

// RoomRepository resolves the owning room for the timeslot listing.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
