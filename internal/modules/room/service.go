package room

import (
	"context"
	"time"

	"xavro/internal/domain"
	"xavro/internal/pkg/dateutil"
)

type Service struct {
	rooms     RoomRepository
	costs     RoomCostRepository
	showtimes ShowtimeCounter
}

func NewService(rooms RoomRepository, costs RoomCostRepository, showtimes ShowtimeCounter) *Service {
	return &Service{
		rooms:     rooms,
		costs:     costs,
		showtimes: showtimes,
	}
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if err := validateCapacity(req.MaxCapacity, req.MinCapacity, req.Duration); err != nil {
		return nil, err
	}

	launch, err := optionalDate(req.LaunchDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	sunset, err := optionalDate(req.SunsetDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	room := &domain.Room{
		Title:       req.Title,
		MaxCapacity: req.MaxCapacity,
		MinCapacity: req.MinCapacity,
		Duration:    req.Duration,
		ResetBuffer: req.ResetBuffer,
		LaunchDate:  launch,
		SunsetDate:  sunset,
		Description: req.Description,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	if err := validateCapacity(req.MaxCapacity, req.MinCapacity, req.Duration); err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	launch, err := optionalDate(req.LaunchDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	sunset, err := optionalDate(req.SunsetDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	room.Title = req.Title
	room.MaxCapacity = req.MaxCapacity
	room.MinCapacity = req.MinCapacity
	room.Duration = req.Duration
	room.ResetBuffer = req.ResetBuffer
	room.LaunchDate = launch
	room.SunsetDate = sunset
	room.Description = req.Description

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	return s.rooms.Delete(ctx, id)
}

// HasAssociations reports whether the room still owns costs or showtimes, so
// the admin UI can warn before a cascading delete.
func (s *Service) HasAssociations(ctx context.Context, roomID int64) (bool, error) {
	costCount, err := s.costs.CountByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	showtimeCount, err := s.showtimes.CountByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	return costCount > 0 || showtimeCount > 0, nil
}

func (s *Service) CreateCost(ctx context.Context, roomID int64, req CostRequest) (*domain.RoomCost, error) {
	start, err := optionalDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := optionalDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	cost := &domain.RoomCost{
		RoomID:      roomID,
		GuestsCount: req.GuestsCount,
		TotalCost:   req.TotalCost,
		StartDate:   start,
		EndDate:     end,
	}
	if err := s.costs.Create(ctx, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *Service) GetCost(ctx context.Context, costID int64) (*domain.RoomCost, error) {
	return s.costs.GetByID(ctx, costID)
}

func (s *Service) ListCosts(ctx context.Context, roomID int64) ([]domain.RoomCost, error) {
	return s.costs.ListByRoom(ctx, roomID)
}

func (s *Service) UpdateCost(ctx context.Context, costID int64, req CostRequest) (*domain.RoomCost, error) {
	cost, err := s.costs.GetByID(ctx, costID)
	if err != nil {
		return nil, err
	}

	start, err := optionalDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := optionalDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	cost.GuestsCount = req.GuestsCount
	cost.TotalCost = req.TotalCost
	cost.StartDate = start
	cost.EndDate = end

	if err := s.costs.Update(ctx, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *Service) DeleteCost(ctx context.Context, costID int64) error {
	return s.costs.Delete(ctx, costID)
}

func validateCapacity(maxCapacity, minCapacity, duration int) error {
	if maxCapacity <= 0 {
		return ErrMaxCapacity
	}
	if minCapacity <= 0 {
		return ErrMinCapacity
	}
	if minCapacity > maxCapacity {
		return ErrCapacityOrder
	}
	if duration <= 0 {
		return ErrDuration
	}
	return nil
}

// optionalDate treats "" as absent, matching the admin form which submits
// empty strings for unset dates.
func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
