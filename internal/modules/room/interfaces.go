package room

import (
	"context"

	"xavro/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetAll(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

type RoomCostRepository interface {
	Create(ctx context.Context, c *domain.RoomCost) error
	GetByID(ctx context.Context, id int64) (*domain.RoomCost, error)
	ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomCost, error)
	Update(ctx context.Context, c *domain.RoomCost) error
	Delete(ctx context.Context, id int64) error
	CountByRoom(ctx context.Context, roomID int64) (int64, error)
}

type ShowtimeCounter interface {
	CountByRoom(ctx context.Context, roomID int64) (int64, error)
}
