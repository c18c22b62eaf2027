package repository

import (
	"context"

	"xavro/internal/domain"

	"gorm.io/gorm"
)

type ShowtimeRepository struct {
	db *gorm.DB
}

func NewShowtimeRepository(db *gorm.DB) *ShowtimeRepository {
	return &ShowtimeRepository{db: db}
}

type showtimeModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	RoomID    int64  `gorm:"column:room_id"`
	DayOfWeek int    `gorm:"column:day_of_week"`
	StartTime string `gorm:"column:start_time"`
	EndTime   string `gorm:"column:end_time"`
	Timeslot  int    `gorm:"column:timeslot"`
}

func (showtimeModel) TableName() string { return "showtimes" }

func toDomainShowtime(m showtimeModel) *domain.Showtime {
	return &domain.Showtime{
		ID:        m.ID,
		RoomID:    m.RoomID,
		DayOfWeek: m.DayOfWeek,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Timeslot:  m.Timeslot,
	}
}

func toShowtimeModel(s *domain.Showtime) showtimeModel {
	return showtimeModel{
		ID:        s.ID,
		RoomID:    s.RoomID,
		DayOfWeek: s.DayOfWeek,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Timeslot:  s.Timeslot,
	}
}

func (r *ShowtimeRepository) Create(ctx context.Context, s *domain.Showtime) error {
	m := toShowtimeModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainShowtime(m)
	return nil
}

func (r *ShowtimeRepository) GetByID(ctx context.Context, id int64) (*domain.Showtime, error) {
	var m showtimeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainShowtime(m), nil
}

func (r *ShowtimeRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Showtime, error) {
	var ms []showtimeModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("day_of_week, timeslot").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Showtime, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainShowtime(m))
	}
	return out, nil
}

// ListByRoomAndWeekday returns the room's showtimes for one schedule weekday
// (0 = Monday .. 6 = Sunday), ordered by timeslot ordinal.
func (r *ShowtimeRepository) ListByRoomAndWeekday(ctx context.Context, roomID int64, dayOfWeek int) ([]domain.Showtime, error) {
	var ms []showtimeModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND day_of_week = ?", roomID, dayOfWeek).
		Order("timeslot").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Showtime, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainShowtime(m))
	}
	return out, nil
}

func (r *ShowtimeRepository) Update(ctx context.Context, s *domain.Showtime) error {
	m := toShowtimeModel(s)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ShowtimeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&showtimeModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ShowtimeRepository) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&showtimeModel{}).
		Where("room_id = ?", roomID).
		Count(&cnt)
	return cnt, tx.Error
}
