package availability

import (
	"context"
	"log"
	"sort"
	"time"

	"xavro/internal/pkg/dateutil"
)

// TimeslotStatus is one showtime slot on a given date together with whether a
// booking already consumes it.
type TimeslotStatus struct {
	ID        int64  `json:"id"`
	Timeslot  int    `json:"timeslot"`
	RoomName  string `json:"roomName"`
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	IsBooked  bool   `json:"isBooked"`
}

// Service computes room availability by joining the recurring weekly showtime
// schedule against bookings. It is stateless and read-only: every invocation
// is a pure function of its inputs and the store contents at call time.
//
// All calendar arithmetic runs in UTC; "today" comes from the injected clock.
type Service struct {
	showtimes ShowtimeRepository
	bookings  BookingRepository
	rooms     RoomRepository

	lookaheadDays int
	now           func() time.Time
}

func NewService(
	showtimes ShowtimeRepository,
	bookings BookingRepository,
	rooms RoomRepository,
	lookaheadDays int,
) *Service {
	return &Service{
		showtimes:     showtimes,
		bookings:      bookings,
		rooms:         rooms,
		lookaheadDays: lookaheadDays,
		now:           time.Now,
	}
}

// AvailableDates returns every date in [today, today+lookaheadDays] on which
// the room has at least one unbooked showtime slot, as sorted YYYY-MM-DD
// strings. An unknown room has no showtimes and therefore no dates; an empty
// result is valid output, not an error. Storage faults propagate to the
// caller.
func (s *Service) AvailableDates(ctx context.Context, roomID int64) ([]string, error) {
	today := dateutil.DateOnly(s.now().UTC())

	dates := make([]string, 0, s.lookaheadDays+1)
	for offset := 0; offset <= s.lookaheadDays; offset++ {
		date := today.AddDate(0, 0, offset)

		showtimes, err := s.showtimes.ListByRoomAndWeekday(ctx, roomID, dateutil.ScheduleWeekday(date))
		if err != nil {
			return nil, err
		}
		if len(showtimes) == 0 {
			continue
		}

		booked, err := s.bookedTimeslots(ctx, roomID, date)
		if err != nil {
			return nil, err
		}

		for _, st := range showtimes {
			if _, taken := booked[st.Timeslot]; !taken {
				dates = append(dates, dateutil.FormatDate(date))
				break
			}
		}
	}

	// The loop walks forward one day at a time, so the result is already a
	// sorted, duplicate-free set.
	return dates, nil
}

// TimeslotsForDate lists the room's showtime slots for one calendar date with
// their booked status, ordered by timeslot ordinal. A date that falls on a
// weekday with no showtimes yields an empty list. Storage faults propagate;
// only an unparseable dateStr is a client error.
func (s *Service) TimeslotsForDate(ctx context.Context, roomID int64, dateStr string) ([]TimeslotStatus, error) {
	date, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	showtimes, err := s.showtimes.ListByRoomAndWeekday(ctx, roomID, dateutil.ScheduleWeekday(date))
	if err != nil {
		return nil, err
	}
	if len(showtimes) == 0 {
		return []TimeslotStatus{}, nil
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookedTimeslots(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	out := make([]TimeslotStatus, 0, len(showtimes))
	for _, st := range showtimes {
		if _, err := dateutil.ParseClock(st.StartTime); err != nil {
			log.Printf("skipping showtime id=%d with malformed start_time %q", st.ID, st.StartTime)
			continue
		}
		if _, err := dateutil.ParseClock(st.EndTime); err != nil {
			log.Printf("skipping showtime id=%d with malformed end_time %q", st.ID, st.EndTime)
			continue
		}

		_, isBooked := booked[st.Timeslot]
		out = append(out, TimeslotStatus{
			ID:        st.ID,
			Timeslot:  st.Timeslot,
			RoomName:  room.Title,
			StartTime: st.StartTime,
			EndTime:   st.EndTime,
			IsBooked:  isBooked,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Timeslot < out[j].Timeslot })
	return out, nil
}

// bookedTimeslots builds the set of timeslot ordinals consumed by bookings on
// the given date. A booking whose ordinal matches no showtime simply never
// hits a candidate slot and is thereby ignored.
func (s *Service) bookedTimeslots(ctx context.Context, roomID int64, date time.Time) (map[int]struct{}, error) {
	bookings, err := s.bookings.ListByRoomAndShowDate(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[int]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.ShowTimeslot] = struct{}{}
	}
	return booked, nil
}
