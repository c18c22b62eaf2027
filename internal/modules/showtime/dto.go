package showtime

type ShowtimeRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Timeslot  int    `json:"timeslot" binding:"required"`
}
