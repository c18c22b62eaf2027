package room

// CreateRoomRequest mirrors the admin UI form. Capacity and duration fields
// arrive as JSON numbers; dates are optional YYYY-MM-DD strings.
type CreateRoomRequest struct {
	Title       string `json:"title" binding:"required"`
	MaxCapacity int    `json:"maxCapacity" binding:"required"`
	MinCapacity int    `json:"minCapacity" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	ResetBuffer int    `json:"resetBuffer"`
	LaunchDate  string `json:"launchDate"`
	SunsetDate  string `json:"sunsetDate"`
	Description string `json:"description"`
}

type UpdateRoomRequest struct {
	Title       string `json:"title" binding:"required"`
	MaxCapacity int    `json:"maxCapacity" binding:"required"`
	MinCapacity int    `json:"minCapacity" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	ResetBuffer int    `json:"resetBuffer"`
	LaunchDate  string `json:"launchDate"`
	SunsetDate  string `json:"sunsetDate"`
	Description string `json:"description"`
}

type CostRequest struct {
	GuestsCount int     `json:"guests_count" binding:"required"`
	TotalCost   float64 `json:"total_cost" binding:"required"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}
