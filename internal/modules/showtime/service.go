package showtime

import (
	"context"

	"xavro/internal/domain"
	"xavro/internal/pkg/dateutil"
)

type Service struct {
	showtimes ShowtimeRepository
}

func NewService(showtimes ShowtimeRepository) *Service {
	return &Service{showtimes: showtimes}
}

func (s *Service) CreateShowtime(ctx context.Context, roomID int64, req ShowtimeRequest) (*domain.Showtime, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	st := &domain.Showtime{
		RoomID:    roomID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Timeslot:  req.Timeslot,
	}
	if err := s.showtimes.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) GetShowtime(ctx context.Context, id int64) (*domain.Showtime, error) {
	return s.showtimes.GetByID(ctx, id)
}

func (s *Service) ListByRoom(ctx context.Context, roomID int64) ([]domain.Showtime, error) {
	return s.showtimes.ListByRoom(ctx, roomID)
}

func (s *Service) UpdateShowtime(ctx context.Context, roomID, showtimeID int64, req ShowtimeRequest) (*domain.Showtime, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	st, err := s.showtimes.GetByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	st.RoomID = roomID
	st.DayOfWeek = *req.DayOfWeek
	st.StartTime = req.StartTime
	st.EndTime = req.EndTime
	st.Timeslot = req.Timeslot

	if err := s.showtimes.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) DeleteShowtime(ctx context.Context, id int64) error {
	return s.showtimes.Delete(ctx, id)
}

func validate(req ShowtimeRequest) error {
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return ErrInvalidWeekday
	}
	start, err := dateutil.ParseClock(req.StartTime)
	if err != nil {
		return ErrInvalidTime
	}
	end, err := dateutil.ParseClock(req.EndTime)
	if err != nil {
		return ErrInvalidTime
	}
	if !end.After(start) {
		return ErrTimeOrder
	}
	if req.Timeslot <= 0 {
		return ErrInvalidSlot
	}
	return nil
}
