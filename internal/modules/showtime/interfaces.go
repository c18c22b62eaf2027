package showtime

import (
	"context"

	"xavro/internal/domain"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, s *domain.Showtime) error
	GetByID(ctx context.Context, id int64) (*domain.Showtime, error)
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Showtime, error)
	Update(ctx context.Context, s *domain.Showtime) error
	Delete(ctx context.Context, id int64) error
}
