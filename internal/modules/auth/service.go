package auth

import (
	"context"
	"errors"

	"xavro/internal/domain"
	"xavro/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users      UserRepository
	jwtService *jwt.Service
}

func NewService(users UserRepository, jwtService *jwt.Service) *Service {
	return &Service{users: users, jwtService: jwtService}
}

// Register creates a staff account. New accounts always get the employee
// role; admins are created by the seeding tool, not over HTTP.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	_, err := s.users.GetByUsername(ctx, req.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		Role:         domain.RoleEmployee,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	// Best effort; a failed timestamp update must not block the login.
	_ = s.users.TouchLastLogin(ctx, u.ID)

	return &LoginResponse{
		Token: token,
		User:  profileOf(u),
	}, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*UserProfile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := profileOf(u)
	return &p, nil
}

func profileOf(u *domain.User) UserProfile {
	return UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
