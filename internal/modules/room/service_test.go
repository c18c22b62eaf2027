package room

import (
	"context"
	"testing"

	"xavro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 42
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomCostRepository struct {
	mock.Mock
}

func (m *MockRoomCostRepository) Create(ctx context.Context, c *domain.RoomCost) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRoomCostRepository) GetByID(ctx context.Context, id int64) (*domain.RoomCost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomCost), args.Error(1)
}

func (m *MockRoomCostRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomCost, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomCost), args.Error(1)
}

func (m *MockRoomCostRepository) Update(ctx context.Context, c *domain.RoomCost) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRoomCostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomCostRepository) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

type MockShowtimeCounter struct {
	mock.Mock
}

func (m *MockShowtimeCounter) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func validCreateRequest() CreateRoomRequest {
	return CreateRoomRequest{
		Title:       "The Vault",
		MaxCapacity: 8,
		MinCapacity: 2,
		Duration:    60,
		ResetBuffer: 15,
	}
}

func TestCreateRoom_Success(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(rooms, new(MockRoomCostRepository), new(MockShowtimeCounter))

	room, err := s.CreateRoom(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), room.ID)
	assert.Equal(t, "The Vault", room.Title)
	assert.Nil(t, room.LaunchDate)
}

func TestCreateRoom_CapacityValidation(t *testing.T) {
	s := NewService(new(MockRoomRepository), new(MockRoomCostRepository), new(MockShowtimeCounter))

	req := validCreateRequest()
	req.MaxCapacity = 0
	_, err := s.CreateRoom(context.Background(), req)
	assert.ErrorIs(t, err, ErrMaxCapacity)

	req = validCreateRequest()
	req.MinCapacity = -1
	_, err = s.CreateRoom(context.Background(), req)
	assert.ErrorIs(t, err, ErrMinCapacity)

	req = validCreateRequest()
	req.MinCapacity = 10
	req.MaxCapacity = 4
	_, err = s.CreateRoom(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityOrder)

	req = validCreateRequest()
	req.Duration = 0
	_, err = s.CreateRoom(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuration)
}

func TestCreateRoom_OptionalDates(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewService(rooms, new(MockRoomCostRepository), new(MockShowtimeCounter))

	req := validCreateRequest()
	req.LaunchDate = "2024-09-01"
	room, err := s.CreateRoom(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, room.LaunchDate)
	assert.Equal(t, "2024-09-01", room.LaunchDate.Format("2006-01-02"))

	req.LaunchDate = "September 1st"
	_, err = s.CreateRoom(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestHasAssociations(t *testing.T) {
	costs := new(MockRoomCostRepository)
	showtimes := new(MockShowtimeCounter)

	costs.On("CountByRoom", mock.Anything, int64(1)).Return(int64(0), nil)
	showtimes.On("CountByRoom", mock.Anything, int64(1)).Return(int64(3), nil)
	costs.On("CountByRoom", mock.Anything, int64(2)).Return(int64(0), nil)
	showtimes.On("CountByRoom", mock.Anything, int64(2)).Return(int64(0), nil)

	s := NewService(new(MockRoomRepository), costs, showtimes)

	has, err := s.HasAssociations(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.HasAssociations(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestUpdateRoom_Success(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{ID: 7, Title: "Old"}, nil)
	rooms.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := NewService(rooms, new(MockRoomCostRepository), new(MockShowtimeCounter))

	req := UpdateRoomRequest{Title: "New", MaxCapacity: 6, MinCapacity: 2, Duration: 45}
	room, err := s.UpdateRoom(context.Background(), 7, req)

	require.NoError(t, err)
	assert.Equal(t, "New", room.Title)
	assert.Equal(t, 45, room.Duration)
	rooms.AssertExpectations(t)
}
