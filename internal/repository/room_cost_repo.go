package repository

import (
	"context"
	"time"

	"xavro/internal/domain"

	"gorm.io/gorm"
)

type RoomCostRepository struct {
	db *gorm.DB
}

func NewRoomCostRepository(db *gorm.DB) *RoomCostRepository {
	return &RoomCostRepository{db: db}
}

type roomCostModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	RoomID      int64      `gorm:"column:room_id"`
	GuestsCount int        `gorm:"column:guests_count"`
	TotalCost   float64    `gorm:"column:total_cost"`
	StartDate   *time.Time `gorm:"column:start_date"`
	EndDate     *time.Time `gorm:"column:end_date"`
}

func (roomCostModel) TableName() string { return "room_costs" }

func toDomainRoomCost(m roomCostModel) *domain.RoomCost {
	return &domain.RoomCost{
		ID:          m.ID,
		RoomID:      m.RoomID,
		GuestsCount: m.GuestsCount,
		TotalCost:   m.TotalCost,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
	}
}

func toRoomCostModel(c *domain.RoomCost) roomCostModel {
	return roomCostModel{
		ID:          c.ID,
		RoomID:      c.RoomID,
		GuestsCount: c.GuestsCount,
		TotalCost:   c.TotalCost,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
	}
}

func (r *RoomCostRepository) Create(ctx context.Context, c *domain.RoomCost) error {
	m := toRoomCostModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainRoomCost(m)
	return nil
}

func (r *RoomCostRepository) GetByID(ctx context.Context, id int64) (*domain.RoomCost, error) {
	var m roomCostModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoomCost(m), nil
}

func (r *RoomCostRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomCost, error) {
	var ms []roomCostModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("guests_count").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RoomCost, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoomCost(m))
	}
	return out, nil
}

func (r *RoomCostRepository) Update(ctx context.Context, c *domain.RoomCost) error {
	m := toRoomCostModel(c)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *RoomCostRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomCostModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomCostRepository) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&roomCostModel{}).
		Where("room_id = ?", roomID).
		Count(&cnt)
	return cnt, tx.Error
}
