package auth

import (
	"context"

	"xavro/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}
