package domain

import "time"

// Room is a bookable venue room. A room runs recurring weekly showtimes;
// bookings consume one showtime slot on one concrete date.
type Room struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" validate:"required"`
	MaxCapacity int        `json:"max_capacity" validate:"required,gt=0"`
	MinCapacity int        `json:"min_capacity" validate:"required,gt=0"`
	Duration    int        `json:"duration" validate:"required,gt=0"` // minutes per session
	ResetBuffer int        `json:"reset_buffer"`                      // minutes between sessions
	LaunchDate  *time.Time `json:"launch_date,omitempty"`
	SunsetDate  *time.Time `json:"sunset_date,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Showtimes []Showtime `json:"showtimes,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Costs     []RoomCost `json:"costs,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Bookings  []Booking  `json:"bookings,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// RoomCost is the total price for one guest count. There is one row per
// guest count up to the room's max capacity; start/end dates allow price
// changes over time.
type RoomCost struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	RoomID      int64      `json:"room_id" validate:"required"`
	GuestsCount int        `json:"guests_count" validate:"required,gt=0"`
	TotalCost   float64    `json:"total_cost" validate:"required,gte=0"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// Showtime is a recurring weekly slot template for a room.
//
// DayOfWeek uses schedule indexing: 0 = Monday .. 6 = Sunday. The timeslot
// ordinal distinguishes multiple shows on the same weekday; (room_id,
// day_of_week, timeslot) is assumed unique across a room's schedule.
type Showtime struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	RoomID    int64  `json:"room_id" validate:"required"`
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"` // HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // HH:MM
	Timeslot  int    `json:"timeslot" validate:"required,gt=0"`
}

// SpecialSchedule marks a one-off closure (maintenance, private event) for a
// room on a specific date. Not yet consulted by the availability engine.
type SpecialSchedule struct {
	ID     int64     `json:"id" gorm:"primaryKey"`
	RoomID int64     `json:"room_id" validate:"required"`
	Date   time.Time `json:"date" gorm:"type:date"`
	Closed bool      `json:"closed" gorm:"default:true"`
	Reason string    `json:"reason,omitempty"`
}
