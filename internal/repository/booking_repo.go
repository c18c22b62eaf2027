package repository

import (
	"context"
	"time"

	"xavro/internal/domain"
	"xavro/internal/pkg/dateutil"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	RoomID       int64     `gorm:"column:room_id"`
	CustomerID   int64     `gorm:"column:customer_id"`
	GuestCount   int       `gorm:"column:guest_count"`
	OrderID      string    `gorm:"column:order_id"`
	BookingDate  time.Time `gorm:"column:booking_date"`
	ShowDate     time.Time `gorm:"column:show_date"`
	ShowTimeslot int       `gorm:"column:show_timeslot"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:           m.ID,
		RoomID:       m.RoomID,
		CustomerID:   m.CustomerID,
		GuestCount:   m.GuestCount,
		OrderID:      m.OrderID,
		BookingDate:  dateutil.DateOnly(m.BookingDate),
		ShowDate:     dateutil.DateOnly(m.ShowDate),
		ShowTimeslot: m.ShowTimeslot,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		RoomID:       b.RoomID,
		CustomerID:   b.CustomerID,
		GuestCount:   b.GuestCount,
		OrderID:      b.OrderID,
		BookingDate:  dateutil.DateOnly(b.BookingDate),
		ShowDate:     dateutil.DateOnly(b.ShowDate),
		ShowTimeslot: b.ShowTimeslot,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListByRoomAndShowDate returns the room's bookings for one show date. The
// date is normalized to midnight UTC before comparison so callers can pass
// any clock reading for the day in question.
func (r *BookingRepository) ListByRoomAndShowDate(ctx context.Context, roomID int64, showDate time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND show_date = ?", roomID, dateutil.DateOnly(showDate)).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
