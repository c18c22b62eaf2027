package repository

import (
	"context"
	"time"

	"xavro/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	Title       string     `gorm:"column:title"`
	MaxCapacity int        `gorm:"column:max_capacity"`
	MinCapacity int        `gorm:"column:min_capacity"`
	Duration    int        `gorm:"column:duration"`
	ResetBuffer int        `gorm:"column:reset_buffer"`
	LaunchDate  *time.Time `gorm:"column:launch_date"`
	SunsetDate  *time.Time `gorm:"column:sunset_date"`
	Description *string    `gorm:"column:description"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Room{
		ID:          m.ID,
		Title:       m.Title,
		MaxCapacity: m.MaxCapacity,
		MinCapacity: m.MinCapacity,
		Duration:    m.Duration,
		ResetBuffer: m.ResetBuffer,
		LaunchDate:  m.LaunchDate,
		SunsetDate:  m.SunsetDate,
		Description: desc,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var desc *string
	if r.Description != "" {
		v := r.Description
		desc = &v
	}

	return roomModel{
		ID:          r.ID,
		Title:       r.Title,
		MaxCapacity: r.MaxCapacity,
		MinCapacity: r.MinCapacity,
		Duration:    r.Duration,
		ResetBuffer: r.ResetBuffer,
		LaunchDate:  r.LaunchDate,
		SunsetDate:  r.SunsetDate,
		Description: desc,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	return r.db.WithContext(ctx).Save(&m).Error
}

// Delete removes the room. Showtimes, bookings and room costs cascade via
// foreign keys.
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
